package socket

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"polling-service/internal/service"
)

const (
	EventJoin    = "poll:join"
	EventLeave   = "poll:leave"
	EventResults = "poll:results"
)

// Frame is the JSON envelope clients send over the live feed: poll:join or
// poll:leave with the poll id. The server pushes poll:results frames with the
// recomputed tally.
type Frame struct {
	Type   string `json:"type"`
	PollID string `json:"pollId,omitempty"`
}

type inboundFrame struct {
	client *Client
	data   []byte
}

type resultsMessage struct {
	Type    string      `json:"type"`
	PollID  string      `json:"pollId"`
	Options interface{} `json:"options"`
}

type WorkerPool struct {
	workers  int
	taskChan chan func()
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

func NewWorkerPool(workers int) *WorkerPool {
	ctx, cancel := context.WithCancel(context.Background())
	wp := &WorkerPool{
		workers:  workers,
		taskChan: make(chan func(), 256),
		ctx:      ctx,
		cancel:   cancel,
	}

	for i := 0; i < workers; i++ {
		wp.wg.Add(1)
		go wp.worker()
	}

	return wp
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for {
		select {
		case task := <-wp.taskChan:
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.Printf("Worker panic recovered: %v", r)
					}
				}()
				task()
			}()
		case <-wp.ctx.Done():
			return
		}
	}
}

func (wp *WorkerPool) Submit(task func()) {
	select {
	case wp.taskChan <- task:
	case <-wp.ctx.Done():
		return
	default:
		log.Printf("Worker pool is busy, task dropped")
	}
}

func (wp *WorkerPool) Stop() {
	wp.cancel()
	wp.wg.Wait()
}

// Hub owns the connection-to-poll subscription map and fans recomputed
// tallies out to every subscriber of the affected poll. All subscription
// mutation flows through the Run loop; room reads take the mutex so the
// broadcast worker sees a consistent subscriber snapshot.
type Hub struct {
	rooms      map[string]map[*Client]bool
	clients    map[*Client]bool
	roomsMutex sync.RWMutex

	register   chan *Client
	unregister chan *Client
	inbound    chan inboundFrame

	resultService service.ResultService

	// Single worker so recompute-and-push cycles leave in the order their
	// triggering votes committed.
	workerPool *WorkerPool

	metrics struct {
		activeConnections int64
		broadcastsSent    int64
		errors            int64
		mutex             sync.RWMutex
	}

	ctx    context.Context
	cancel context.CancelFunc
}

func NewHub(resultService service.ResultService) *Hub {

	ctx, cancel := context.WithCancel(context.Background())

	return &Hub{
		rooms:         make(map[string]map[*Client]bool),
		clients:       make(map[*Client]bool),
		register:      make(chan *Client, 100),
		unregister:    make(chan *Client, 100),
		inbound:       make(chan inboundFrame, 1000),
		resultService: resultService,

		workerPool: NewWorkerPool(1),

		ctx:    ctx,
		cancel: cancel,
	}
}

// QueueBroadcast schedules one recompute-and-push cycle for the poll. It
// never blocks the caller; under sustained overload a cycle may be dropped,
// which is acceptable because a later vote's cycle carries a superset tally.
func (h *Hub) QueueBroadcast(pollID string) {
	h.workerPool.Submit(func() {
		h.computeAndBroadcast(pollID)
	})
}

func (h *Hub) Run() {

	defer h.workerPool.Stop()

	for {
		select {
		case <-h.ctx.Done():
			log.Println("Hub shutting down...")
			return

		case client := <-h.register:
			h.handleClientRegister(client)

		case client := <-h.unregister:
			h.handleClientUnregister(client)

		case frame := <-h.inbound:
			h.handleInboundFrame(frame)
		}
	}
}

func (h *Hub) handleClientRegister(client *Client) {

	h.roomsMutex.Lock()
	h.clients[client] = true
	h.roomsMutex.Unlock()

	h.metrics.mutex.Lock()
	h.metrics.activeConnections++
	h.metrics.mutex.Unlock()

	log.Printf("Client %s connected (user %s)", client.connID, client.userID)
}

// handleClientUnregister removes the client from every room it joined and
// closes its send channel. Both sides of a dead connection funnel here, so
// membership is checked before closing.
func (h *Hub) handleClientUnregister(client *Client) {

	h.roomsMutex.Lock()
	if _, found := h.clients[client]; found {
		delete(h.clients, client)

		for pollID := range client.polls {
			if clients, ok := h.rooms[pollID]; ok {
				delete(clients, client)
				if len(clients) == 0 {
					delete(h.rooms, pollID)
					log.Printf("Poll room %s removed as it's empty", pollID)
				}
			}
		}

		close(client.send)
		log.Printf("Client %s disconnected (user %s)", client.connID, client.userID)

		h.metrics.mutex.Lock()
		h.metrics.activeConnections--
		h.metrics.mutex.Unlock()
	}
	h.roomsMutex.Unlock()
}

func (h *Hub) handleInboundFrame(frame inboundFrame) {

	var msg Frame
	if err := json.Unmarshal(frame.data, &msg); err != nil {
		log.Printf("Error parsing frame from client %s: %v", frame.client.connID, err)
		h.incrementErrorCount()
		return
	}

	switch msg.Type {
	case EventJoin:
		h.handleJoin(frame.client, msg.PollID)
	case EventLeave:
		h.handleLeave(frame.client, msg.PollID)
	default:
		log.Printf("Unknown frame type: %s", msg.Type)
	}
}

// handleJoin is idempotent: joining a poll twice is the same as joining once.
func (h *Hub) handleJoin(client *Client, pollID string) {

	if pollID == "" {
		return
	}

	h.roomsMutex.Lock()
	defer h.roomsMutex.Unlock()

	// A join can still sit in the inbound queue when the disconnect is
	// processed first. That client's send channel is already closed and must
	// not re-enter a room.
	if _, ok := h.clients[client]; !ok {
		log.Printf("Ignoring join from disconnected client %s", client.connID)
		return
	}

	if _, ok := h.rooms[pollID]; !ok {
		h.rooms[pollID] = make(map[*Client]bool)
	}
	h.rooms[pollID][client] = true
	client.polls[pollID] = true

	log.Printf("Client %s joined poll %s", client.connID, pollID)
}

func (h *Hub) handleLeave(client *Client, pollID string) {

	h.roomsMutex.Lock()
	defer h.roomsMutex.Unlock()

	if _, ok := h.clients[client]; !ok {
		return
	}

	if clients, ok := h.rooms[pollID]; ok {
		delete(clients, client)
		if len(clients) == 0 {
			delete(h.rooms, pollID)
		}
	}
	delete(client.polls, pollID)

	log.Printf("Client %s left poll %s", client.connID, pollID)
}

func (h *Hub) computeAndBroadcast(pollID string) {

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	results, err := h.resultService.ComputeResults(ctx, pollID)
	if err != nil {
		log.Printf("Error computing results for poll %s: %v", pollID, err)
		h.incrementErrorCount()
		return
	}

	message, err := json.Marshal(resultsMessage{
		Type:    EventResults,
		PollID:  results.PollID,
		Options: results.Options,
	})
	if err != nil {
		log.Printf("Error marshaling results for poll %s: %v", pollID, err)
		h.incrementErrorCount()
		return
	}

	h.sendToRoom(pollID, message)

	h.metrics.mutex.Lock()
	h.metrics.broadcastsSent++
	h.metrics.mutex.Unlock()
}

// sendToRoom pushes a message to every current subscriber of the poll. Each
// push is independent: a client whose send buffer is full is evicted instead
// of blocking delivery to the rest of the room.
func (h *Hub) sendToRoom(pollID string, message []byte) {
	h.roomsMutex.RLock()
	defer h.roomsMutex.RUnlock()

	if clients, ok := h.rooms[pollID]; ok {
		deadClients := make([]*Client, 0)

		for client := range clients {
			select {
			case client.send <- message:
			default:
				deadClients = append(deadClients, client)
			}
		}

		for _, client := range deadClients {
			go func(c *Client) {
				select {
				case h.unregister <- c:
				default:
				}
			}(client)
		}
	}
}

// SubscriberCount reports how many connections currently subscribe to the poll.
func (h *Hub) SubscriberCount(pollID string) int {
	h.roomsMutex.RLock()
	defer h.roomsMutex.RUnlock()
	return len(h.rooms[pollID])
}

func (h *Hub) incrementErrorCount() {
	h.metrics.mutex.Lock()
	h.metrics.errors++
	h.metrics.mutex.Unlock()
}

func (h *Hub) GetMetrics() (int64, int64, int64) {
	h.metrics.mutex.RLock()
	defer h.metrics.mutex.RUnlock()
	return h.metrics.activeConnections, h.metrics.broadcastsSent, h.metrics.errors
}

func (h *Hub) Shutdown() {
	h.cancel()
}
