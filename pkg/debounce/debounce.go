// Package debounce implementa una tarea retrasada cancelable: se programa en
// cada solicitud, la siguiente solicitud cancela y reprograma la anterior, y
// Flush fuerza la ejecución sincrónica de la llamada pendiente. La única
// garantía de orden es que gana la última llamada programada.
package debounce

import (
	"sync"
	"time"
)

type Debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
	fn    func()
	gen   uint64
}

func New(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Schedule programa fn tras la ventana de espera. Cualquier llamada pendiente
// se cancela: las solicitudes rápidas se funden en una sola ejecución.
func (d *Debouncer) Schedule(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}

	d.gen++
	gen := d.gen
	d.fn = fn
	d.timer = time.AfterFunc(d.delay, func() {
		d.fire(gen)
	})
}

// fire ejecuta la llamada pendiente solo si sigue siendo la más reciente. El
// contador de generación cubre la ventana entre el disparo del timer y la
// toma del lock.
func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen || d.fn == nil {
		d.mu.Unlock()
		return
	}

	fn := d.fn
	d.fn = nil
	d.timer = nil
	d.mu.Unlock()

	fn()
}

// Flush ejecuta de inmediato la llamada pendiente, si existe
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
	fn := d.fn
	d.fn = nil
	d.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Stop cancela la llamada pendiente sin ejecutarla
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
	d.fn = nil
}

// Pending informa si hay una llamada programada sin ejecutar
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.fn != nil
}
