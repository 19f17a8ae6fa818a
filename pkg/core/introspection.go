package core

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	Collection string `json:"collection"`
	StoreType  string `json:"store_type"`
	Assigned   bool   `json:"server_assigned_ids"`
}

// State implements introspection.Introspectable.
func (s *Service[R, K]) State() any {
	storeType := "unknown"
	if s.store != nil {
		storeType = "store"
		// Try to get component type if store implements introspection.Component
		if comp, ok := s.store.(introspection.Component); ok {
			storeType = comp.ComponentType()
		}
	}

	return ServiceState{
		Collection: s.schema.Kind,
		StoreType:  storeType,
		Assigned:   s.schema.Assign != nil,
	}
}

// ComponentType implements introspection.Component.
func (s *Service[R, K]) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service[Note, int64])(nil)
var _ introspection.Component = (*Service[LaunchItem, string])(nil)
