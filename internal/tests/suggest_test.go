package tests

import (
	"context"
	"errors"
	"strings"
	"testing"

	"swiftride/internal/service"
)

// ──────────────────────────────────────────────
// 6. LOCATION SUGGESTIONS
// ──────────────────────────────────────────────

func TestSuggest_PickupPromptMentionsPickup(t *testing.T) {
	t.Parallel()

	completer := &MockCompleter{Completion: "Grand Central Terminal, 89 E 42nd St"}
	suggestService := service.NewSuggestService(completer)

	_, err := suggestService.Suggest(context.Background(), "midtown manhattan", service.RolePickup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(completer.LastPrompt, "pickup") {
		t.Errorf("expected pickup prompt, got %q", completer.LastPrompt)
	}
	if !strings.Contains(completer.LastPrompt, "midtown manhattan") {
		t.Errorf("expected prompt to carry the input, got %q", completer.LastPrompt)
	}
}

func TestSuggest_OtherRolesPromptForDropoff(t *testing.T) {
	t.Parallel()

	// Any role other than pickup prompts for a dropoff.
	for _, role := range []string{service.RoleDropoff, "destination", ""} {
		role := role
		t.Run("role "+role, func(t *testing.T) {
			t.Parallel()

			completer := &MockCompleter{Completion: "Harbor View Hotel, 1 Pier Rd"}
			suggestService := service.NewSuggestService(completer)

			_, err := suggestService.Suggest(context.Background(), "waterfront", role)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !strings.Contains(completer.LastPrompt, "dropoff") {
				t.Errorf("expected dropoff prompt, got %q", completer.LastPrompt)
			}
			if strings.Contains(completer.LastPrompt, "pickup") {
				t.Errorf("dropoff prompt mentions pickup: %q", completer.LastPrompt)
			}
		})
	}
}

func TestSuggest_CompletionReturnedVerbatim(t *testing.T) {
	t.Parallel()

	// The provider's output is passed through untouched, markup included.
	completion := "**Pike Place Market**\n85 Pike St, Seattle <br> open daily"
	completer := &MockCompleter{Completion: completion}
	suggestService := service.NewSuggestService(completer)

	got, err := suggestService.Suggest(context.Background(), "downtown seattle", service.RolePickup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != completion {
		t.Errorf("expected verbatim completion %q, got %q", completion, got)
	}
}

func TestSuggest_MissingInput_Rejected(t *testing.T) {
	t.Parallel()

	completer := &MockCompleter{Completion: "anywhere"}
	suggestService := service.NewSuggestService(completer)

	_, err := suggestService.Suggest(context.Background(), "", service.RolePickup)
	if !errors.Is(err, service.ErrMissingSuggestionInput) {
		t.Errorf("expected ErrMissingSuggestionInput, got %v", err)
	}
	if completer.CallCount != 0 {
		t.Errorf("provider called %d times for empty input", completer.CallCount)
	}
}

func TestSuggest_ProviderError_Propagated(t *testing.T) {
	t.Parallel()

	completer := &MockCompleter{Err: errors.New("rate limited")}
	suggestService := service.NewSuggestService(completer)

	_, err := suggestService.Suggest(context.Background(), "airport", service.RoleDropoff)
	if err == nil {
		t.Fatal("expected provider error to surface")
	}
}
