package models

import "encoding/json"

// ExpansionState records which rows of a hierarchical table are open. Rows never
// toggled are collapsed.
type ExpansionState[K comparable] struct {
	expanded map[K]bool
}

func NewExpansionState[K comparable]() *ExpansionState[K] {
	return &ExpansionState[K]{expanded: map[K]bool{}}
}

func (e *ExpansionState[K]) Toggle(key K) {
	if e.expanded == nil {
		e.expanded = map[K]bool{}
	}
	if e.expanded[key] {
		delete(e.expanded, key)
		return
	}
	e.expanded[key] = true
}

func (e *ExpansionState[K]) IsExpanded(key K) bool {
	return e.expanded[key]
}

func (e *ExpansionState[K]) Len() int {
	return len(e.expanded)
}

// MarshalJSON writes the expanded keys as a list. Order is not significant.
func (e ExpansionState[K]) MarshalJSON() ([]byte, error) {
	keys := make([]K, 0, len(e.expanded))
	for k := range e.expanded {
		keys = append(keys, k)
	}
	return json.Marshal(keys)
}

func (e *ExpansionState[K]) UnmarshalJSON(data []byte) error {
	var keys []K
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	e.expanded = make(map[K]bool, len(keys))
	for _, k := range keys {
		e.expanded[k] = true
	}
	return nil
}

type CustomerRowKey struct {
	CustomerID string `json:"customerId"`
}
