package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bffgym/pos-be/services"
)

type SyncController struct {
	queue *services.DurableQueue
	pump  *services.DeliveryPump
}

func NewSyncController(queue *services.DurableQueue, pump *services.DeliveryPump) *SyncController {
	return &SyncController{queue: queue, pump: pump}
}

// Flush is the UI's connectivity-restored signal: drain whatever is
// pending, right now, synchronously. Overlapping with a running drain is
// safe and reported as skipped.
func (sc *SyncController) Flush(c *gin.Context) {
	res := sc.pump.Flush()

	body := gin.H{
		"sent":    res.Sent,
		"pending": res.Pending,
		"skipped": res.Skipped,
	}
	if res.Err != nil {
		// Not an HTTP failure: events stay queued and are retried later.
		body["error"] = res.Err.Error()
		body["message"] = "Delivery interrupted; data is safe locally"
	}
	c.JSON(http.StatusOK, body)
}

// GetQueue exposes the pending backlog so the front desk can see what has
// not reached the sheet yet.
func (sc *SyncController) GetQueue(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"pending": sc.queue.Len(),
		"events":  sc.queue.Snapshot(),
	})
}
