// Package identity resolves which user's collections a session binds
// to. There is no authentication; identity is declared, not proven,
// and only namespaces the per-user documents.
package identity

// Provider yields the current user's ID.
type Provider interface {
	UserID() string
}

// StaticProvider is a Provider fixed at construction time, typically
// from configuration.
type StaticProvider struct {
	id string
}

// NewStaticProvider creates a provider for the given user ID.
func NewStaticProvider(id string) *StaticProvider {
	return &StaticProvider{id: id}
}

// UserID returns the configured user ID.
func (p *StaticProvider) UserID() string {
	return p.id
}
