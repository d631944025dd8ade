package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"movie_recommender/model"
	errorHandler "movie_recommender/pkg/error"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

type IEventQueue interface {
	Enqueue(event model.Event) (int, error)
	Dequeue() (model.Event, bool)
	Len() int
	Start(consumerFunc ConsumerFunc, emptyQueueSleep time.Duration)
	Close()
}

type EventQueue struct {
	queue             []model.Event
	mutex             sync.Mutex
	queueFile         string
	capacity          int
	workers           int
	saveQueueInterval time.Duration
	batchSize         int
	operationCount    int
	doneChan          chan bool
	done              atomic.Bool
	wg                *sync.WaitGroup
}

func NewEventQueue(queueFile string, workers int, capacity int, saveQueueInterval time.Duration, batchSize int) *EventQueue {
	eq := &EventQueue{
		queue:             make([]model.Event, 0, capacity),
		queueFile:         queueFile,
		capacity:          capacity,
		workers:           workers,
		saveQueueInterval: saveQueueInterval,
		batchSize:         batchSize,
		operationCount:    0,
		doneChan:          make(chan bool),
		wg:                &sync.WaitGroup{},
	}

	eq.loadQueue()
	go eq.periodicSaveQueue()

	return eq
}

//---------------------------------------
//---------------------------------------

type ConsumerFunc func(wid int, event model.Event)

// EventPublisher is the transport events are handed to, rabbitmq.Publisher in production.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
}

var ErrOverflow = errors.New("overflow")

//---------------------------------------
//---------------------------------------

func (eq *EventQueue) Enqueue(event model.Event) (int, error) {
	eq.mutex.Lock()
	defer eq.mutex.Unlock()

	if len(eq.queue) >= eq.capacity {
		return -1, ErrOverflow
	}

	eq.queue = append(eq.queue, event)

	eq.checkSave()

	return len(eq.queue) - 1, nil
}

func (eq *EventQueue) Dequeue() (model.Event, bool) {
	eq.mutex.Lock()
	defer eq.mutex.Unlock()

	if len(eq.queue) == 0 {
		return model.Event{}, false
	}

	event := eq.queue[0]
	eq.queue = eq.queue[1:]

	eq.checkSave()

	return event, true
}

func (eq *EventQueue) Len() int {
	eq.mutex.Lock()
	defer eq.mutex.Unlock()
	return len(eq.queue)
}

//---------------------------------------
//---------------------------------------

func (eq *EventQueue) Start(consumerFunc ConsumerFunc, emptyQueueSleep time.Duration) {
	for i := 0; i < eq.workers; i++ {
		eq.wg.Add(1)
		go eq.worker(i, consumerFunc, emptyQueueSleep)
	}
}

func (eq *EventQueue) worker(wid int, consumerFunc ConsumerFunc, emptyQueueSleep time.Duration) {
	defer eq.wg.Done()

	for {
		if eq.done.Load() {
			return
		}

		item, exist := eq.Dequeue()
		if !exist {
			time.Sleep(emptyQueueSleep)
			continue
		}

		consumerFunc(wid, item)
	}
}

// PublishConsumer sends every event to the publisher as JSON, routed by its type.
func PublishConsumer(publisher EventPublisher) ConsumerFunc {
	return func(wid int, event model.Event) {
		body, err := json.Marshal(event)
		if err != nil {
			errorHandler.SaveError("Error marshaling event", err)
			return
		}

		err = publisher.Publish(context.Background(), string(event.Type), body)
		if err != nil {
			errMsg := fmt.Sprintf("Error publishing event %s: %v", event.EventId, err)
			errorHandler.SaveError(errMsg, err)
			return
		}
		log.Debug().Int("worker", wid).Str("event_type", string(event.Type)).Msg("event published")
	}
}

// enqueueEvent never fails the caller, a full or missing queue only drops the event.
func enqueueEvent(eq IEventQueue, event model.Event) {
	if eq == nil {
		return
	}
	if _, err := eq.Enqueue(event); err != nil {
		log.Warn().Err(err).Str("event_type", string(event.Type)).Msg("event dropped")
	}
}

//---------------------------------------
//---------------------------------------

func (eq *EventQueue) periodicSaveQueue() {
	ticker := time.NewTicker(eq.saveQueueInterval)
	defer ticker.Stop()

	for {
		select {
		case <-eq.doneChan:
			return
		case <-ticker.C:
			eq.mutex.Lock()
			if eq.operationCount > 0 {
				eq.saveQueue()
				eq.operationCount = 0
			}
			eq.mutex.Unlock()
		}
	}
}

func (eq *EventQueue) checkSave() {
	eq.operationCount++
	if eq.operationCount >= eq.batchSize {
		eq.saveQueue()
		eq.operationCount = 0
	}
}

func (eq *EventQueue) saveQueue() {
	data, err := json.Marshal(eq.queue)
	if err != nil {
		errMsg := fmt.Sprintf("Error marshaling queue: %v", err)
		errorHandler.SaveError(errMsg, err)
		return
	}

	err = os.WriteFile(eq.queueFile, data, 0644)
	if err != nil {
		errMsg := fmt.Sprintf("Error saving queue: %v", err)
		errorHandler.SaveError(errMsg, err)
	}
}

func (eq *EventQueue) loadQueue() {
	eq.mutex.Lock()
	defer eq.mutex.Unlock()

	data, err := os.ReadFile(eq.queueFile)
	if err != nil {
		if !os.IsNotExist(err) {
			errMsg := fmt.Sprintf("Error reading queue file: %v", err)
			errorHandler.SaveError(errMsg, err)
		}
		return
	}

	err = json.Unmarshal(data, &eq.queue)
	if err != nil {
		errMsg := fmt.Sprintf("Error unmarshaling queue: %v", err)
		errorHandler.SaveError(errMsg, err)
		return
	}
	if len(eq.queue) > eq.capacity {
		eq.queue = eq.queue[:eq.capacity]
	}
}

func (eq *EventQueue) Close() {
	eq.doneChan <- true
	eq.done.Store(true)
	eq.wg.Wait()
	eq.mutex.Lock()
	eq.saveQueue()
	eq.mutex.Unlock()
}
