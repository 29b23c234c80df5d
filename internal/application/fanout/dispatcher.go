// Package fanout entrega eventos de ciclo de vida das enquetes a webhooks
// inscritos e avalia regras de automação, fora do caminho crítico da
// requisição que originou o evento. A entrega é best-effort: falhas são
// registradas em log e nunca propagadas ao chamador.
package fanout

import (
	"context"
	"log"
	"sync"

	"github.com/enquesta/enquesta-api/internal/domain/entities"
)

// SubscriptionSource fornece as inscrições habilitadas para um evento
type SubscriptionSource interface {
	ListEnabledForEvent(event string) ([]entities.WebhookSubscription, error)
}

// RuleSource fornece as regras habilitadas para um gatilho, em ordem
// ascendente de prioridade
type RuleSource interface {
	ListEnabledForTrigger(trigger string) ([]entities.LogicRule, error)
}

// Deliverer entrega um evento a uma inscrição de webhook
type Deliverer interface {
	Deliver(ctx context.Context, sub entities.WebhookSubscription, event Event) error
}

// RuleExecutor executa a ação de uma regra disparada
type RuleExecutor interface {
	Execute(ctx context.Context, rule entities.LogicRule, event Event) error
}

// Config controla o dimensionamento do dispatcher
type Config struct {
	Workers   int
	QueueSize int
}

// Dispatcher distribui eventos em background através de um pool de workers.
// Dispatch nunca bloqueia o chamador: com a fila cheia o evento é descartado
// com um aviso em log.
type Dispatcher struct {
	subscriptions SubscriptionSource
	rules         RuleSource
	deliverer     Deliverer
	executor      RuleExecutor

	queue  chan Event
	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
}

// NewDispatcher cria e inicia um dispatcher com o pool de workers
func NewDispatcher(subs SubscriptionSource, rules RuleSource, deliverer Deliverer, executor RuleExecutor, cfg Config) *Dispatcher {
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 256
	}

	d := &Dispatcher{
		subscriptions: subs,
		rules:         rules,
		deliverer:     deliverer,
		executor:      executor,
		queue:         make(chan Event, cfg.QueueSize),
	}

	for i := 0; i < cfg.Workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}

	return d
}

// Dispatch enfileira um evento para distribuição em background
func (d *Dispatcher) Dispatch(event Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		log.Printf("[FANOUT] dispatcher encerrado, evento %s descartado", event.Type)
		return
	}

	select {
	case d.queue <- event:
	default:
		log.Printf("[FANOUT] fila cheia, evento %s descartado", event.Type)
	}
}

// Close encerra a fila e aguarda os workers drenarem os eventos pendentes
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for event := range d.queue {
		d.process(event)
	}
}

// process enumera inscritos e regras exatamente uma vez por ocorrência.
// Entregas de webhook são paralelas e independentes; regras rodam em
// sequência por prioridade.
func (d *Dispatcher) process(event Event) {
	d.deliverWebhooks(event)
	d.evaluateRules(event)
}

func (d *Dispatcher) deliverWebhooks(event Event) {
	subs, err := d.subscriptions.ListEnabledForEvent(event.Type)
	if err != nil {
		log.Printf("[FANOUT] erro ao buscar webhooks para %s: %v", event.Type, err)
		return
	}

	var wg sync.WaitGroup
	for _, sub := range subs {
		wg.Add(1)
		go func(sub entities.WebhookSubscription) {
			defer wg.Done()
			if err := d.deliverer.Deliver(context.Background(), sub, event); err != nil {
				log.Printf("[FANOUT] falha ao entregar %s para %s: %v", event.Type, sub.URL, err)
			}
		}(sub)
	}
	wg.Wait()
}

func (d *Dispatcher) evaluateRules(event Event) {
	rules, err := d.rules.ListEnabledForTrigger(event.Type)
	if err != nil {
		log.Printf("[FANOUT] erro ao buscar regras para %s: %v", event.Type, err)
		return
	}

	for _, rule := range rules {
		d.runRule(rule, event)
	}
}

// runRule isola cada regra: um panic ou erro não impede as seguintes
func (d *Dispatcher) runRule(rule entities.LogicRule, event Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[FANOUT] panic na regra %s: %v", rule.ID, r)
		}
	}()

	if err := d.executor.Execute(context.Background(), rule, event); err != nil {
		log.Printf("[FANOUT] erro na regra %s (%s): %v", rule.ID, rule.Action.Type, err)
	}
}
