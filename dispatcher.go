package main

import (
	"context"
	"log"
	"time"
)

// Dispatcher aceita notificações após o commit e as entrega fora do
// caminho de requisição. Sem retry, sem dead-letter, sem garantia de
// ordem: o canal é deliberadamente best-effort.
type Dispatcher interface {
	Dispatch(n OrderNotification)
}

// GraphDispatcher entrega notificações ao espelho de grafo a partir de
// um worker em background
type GraphDispatcher struct {
	mirror  GraphMirror
	queue   chan OrderNotification
	stopped chan struct{}
}

// NewGraphDispatcher cria o dispatcher com uma fila limitada
func NewGraphDispatcher(mirror GraphMirror, queueSize int) *GraphDispatcher {
	return &GraphDispatcher{
		mirror:  mirror,
		queue:   make(chan OrderNotification, queueSize),
		stopped: make(chan struct{}),
	}
}

// Start inicia o worker de entrega
func (d *GraphDispatcher) Start() {
	go d.run()
}

func (d *GraphDispatcher) run() {
	defer close(d.stopped)
	for n := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := d.mirror.RecordOrderRelation(ctx, n); err != nil {
			// Entrega é best-effort: loga e descarta
			log.Printf("⚠️  Graph mirror write failed (non-critical), order %s: %v", n.OrderID, err)
		}
		cancel()
	}
}

// Dispatch enfileira a notificação sem bloquear o caminho da resposta.
// Fila cheia descarta a notificação, nunca o pedido.
func (d *GraphDispatcher) Dispatch(n OrderNotification) {
	select {
	case d.queue <- n:
	default:
		log.Printf("⚠️  Graph mirror queue full, dropping notification for order %s", n.OrderID)
	}
}

// Stop drena a fila e espera o worker terminar
func (d *GraphDispatcher) Stop() {
	close(d.queue)
	<-d.stopped
}
