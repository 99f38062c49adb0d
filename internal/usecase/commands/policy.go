package commands

import (
	"context"
	"strings"
)

// FormContext identifies where a redemption request came from.
type FormContext struct {
	FormID string
}

// RedemptionPolicy decides whether a form may redeem certificates at all.
type RedemptionPolicy interface {
	Allow(ctx context.Context, form *FormContext) bool
}

// AllowListPolicy permits the listed form ids. An empty list permits every form,
// and requests without form context are always allowed.
type AllowListPolicy struct {
	allowed map[string]struct{}
}

func NewAllowListPolicy(formIDs []string) *AllowListPolicy {
	allowed := make(map[string]struct{}, len(formIDs))
	for _, id := range formIDs {
		if id = strings.TrimSpace(id); id != "" {
			allowed[id] = struct{}{}
		}
	}
	return &AllowListPolicy{allowed: allowed}
}

func (p *AllowListPolicy) Allow(_ context.Context, form *FormContext) bool {
	if form == nil || len(p.allowed) == 0 {
		return true
	}
	_, ok := p.allowed[strings.TrimSpace(form.FormID)]
	return ok
}
