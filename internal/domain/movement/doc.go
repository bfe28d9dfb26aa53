// Package movement contiene el motor de conciliación de movimientos:
// clasifica transferencias (reales y agendadas) en eventos direccionales,
// los agrupa por bucket de tiempo y los agrega por (ítem, estoque, bucket).
//
// Todo el estado es local a cada llamada; el paquete no hace I/O.
package movement
