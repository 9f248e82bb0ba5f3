// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Hullspace Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/hullspace/shipd/counter"
)

// Message - event sent to a queue
type Message struct {
	Command    string
	Parameters [][]byte
}

// Queue - a single event queue
type Queue struct {
	c       chan Message
	dropped counter.Counter
}

// the set of queues, one per event family
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type busses struct {
	Transfer   *Queue `size:"100"` // ownership changed
	Activation *Queue `size:"100"` // ship activated
	Spawn      *Queue `size:"100"` // child registered under its prefix
	Keys       *Queue `size:"100"` // key material changed
	Continuity *Queue `size:"100"` // continuity number incremented
	Escape     *Queue `size:"100"` // escape requested / canceled / accepted
	Proxy      *Queue `size:"100"` // spawn or transfer proxy changed
	Reputation *Queue `size:"100"` // censure placed or forgiven
	TestQueue  *Queue `size:"10"`  // for testing use
}

// Bus - the exported message bus
var Bus busses

// create all queues
func init() {
	busType := reflect.TypeOf(Bus)
	busValue := reflect.ValueOf(&Bus).Elem()

	for i := 0; i < busType.NumField(); i += 1 {
		fieldInfo := busType.Field(i)

		sizeTag := fieldInfo.Tag.Get("size")
		size, err := strconv.Atoi(sizeTag)
		if nil != err || size <= 0 {
			panic(fmt.Sprintf("queue: %v has invalid size: %q", fieldInfo, sizeTag))
		}

		q := &Queue{
			c: make(chan Message, size),
		}
		busValue.Field(i).Set(reflect.ValueOf(q))
	}
}

// Send - queue a message
//
// drops the oldest message if the queue is full so that the ledger
// never blocks on a slow observer
func (queue *Queue) Send(command string, parameters ...[]byte) {
	message := Message{
		Command:    command,
		Parameters: parameters,
	}
	for {
		select {
		case queue.c <- message:
			return
		default:
			// queue is full: discard the oldest entry
			select {
			case <-queue.c:
				queue.dropped.Increment()
			default:
			}
		}
	}
}

// DroppedCount - number of messages discarded because the queue was full
func (queue *Queue) DroppedCount() uint64 {
	return queue.dropped.Uint64()
}

// Chan - channel to read from the queue
func (queue *Queue) Chan() <-chan Message {
	return queue.c
}

// Flush - discard all queued messages
func (queue *Queue) Flush() {
draining:
	for {
		select {
		case <-queue.c:
		default:
			break draining
		}
	}
}
