// File: fake/ledger.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package fake provides destruction-counting element types for container
// tests. Every Item records its Drop in the Ledger that created it, so a
// test can assert that each live value was destroyed exactly once.
package fake

import (
	"fmt"
	"sort"
)

// Ledger records drops per item id. Not safe for concurrent use.
type Ledger struct {
	created int
	drops   map[int]int
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{drops: make(map[int]int)}
}

// Item mints a tracked value.
func (l *Ledger) Item(id int) Item {
	l.created++
	return Item{ID: id, ledger: l}
}

// Items mints tracked values for ids.
func (l *Ledger) Items(ids ...int) []Item {
	out := make([]Item, len(ids))
	for i, id := range ids {
		out[i] = l.Item(id)
	}
	return out
}

// Drops returns how many times id was dropped.
func (l *Ledger) Drops(id int) int { return l.drops[id] }

// Total returns the number of drops recorded.
func (l *Ledger) Total() int {
	n := 0
	for _, c := range l.drops {
		n += c
	}
	return n
}

// Created returns the number of items minted.
func (l *Ledger) Created() int { return l.created }

// Repeated lists ids dropped more than once.
func (l *Ledger) Repeated() []int {
	var ids []int
	for id, c := range l.drops {
		if c > 1 {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}

// Item is an element whose destruction is observable.
type Item struct {
	ID     int
	ledger *Ledger
}

// Drop implements api.Dropper. Dropping a zero Item means an uninitialized
// slot was destroyed, which is always a container bug.
func (it Item) Drop() {
	if it.ledger == nil {
		panic(fmt.Sprintf("drop of uninitialized slot (id %d)", it.ID))
	}
	it.ledger.drops[it.ID]++
}

// IDs extracts the ids of items.
func IDs(items []Item) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}
