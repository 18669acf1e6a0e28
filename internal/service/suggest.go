package service

import (
	"context"
	"fmt"
)

// Completer is the interface to a text-generation provider.
type Completer interface {
	// Complete returns the first completion for the prompt under the given
	// system instruction.
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// suggestionSystemPrompt is the fixed instruction for location suggestions.
const suggestionSystemPrompt = "You are a helpful assistant that suggests specific locations based on user input. Keep responses concise and location-focused."

// Suggestion roles.
const (
	RolePickup  = "pickup"
	RoleDropoff = "dropoff"
)

// SuggestService turns free-text location input into a suggested address via
// a text-generation provider. It is a stateless proxy: no retry, no caching,
// nothing persisted.
type SuggestService struct {
	completer Completer
}

// NewSuggestService creates a new SuggestService.
func NewSuggestService(completer Completer) *SuggestService {
	return &SuggestService{completer: completer}
}

// Suggest returns a suggested location for the input. Any role other than
// "pickup" is treated as dropoff. The provider's completion is returned
// verbatim.
func (s *SuggestService) Suggest(ctx context.Context, input, role string) (string, error) {
	if input == "" {
		return "", ErrMissingSuggestionInput
	}

	var prompt string
	if role == RolePickup {
		prompt = fmt.Sprintf("Suggest a specific pickup location near this area: %s. Return only the location name and address, no additional text.", input)
	} else {
		prompt = fmt.Sprintf("Suggest a suitable dropoff location near this area: %s. Return only the location name and address, no additional text.", input)
	}

	return s.completer.Complete(ctx, suggestionSystemPrompt, prompt)
}
