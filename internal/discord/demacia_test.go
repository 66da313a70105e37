package discord

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/daanteeab/demacia/internal/riot"
)

func TestErrorMessage_Hints(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantHint string
	}{
		{
			"not found suggests riot id format",
			&riot.APIError{Kind: riot.KindNotFound, StatusCode: 404, Endpoint: "account-by-riot-id"},
			"gameName#tagLine",
		},
		{
			"auth failure points at the api key",
			&riot.APIError{Kind: riot.KindAuthFailure, StatusCode: 403, Endpoint: "account-by-riot-id"},
			"RIOT_API_KEY",
		},
		{
			"rate limit suggests waiting",
			&riot.APIError{Kind: riot.KindRateLimited, StatusCode: 429, Endpoint: "match-by-id"},
			"Wait a minute",
		},
		{
			"network suggests connectivity",
			&riot.APIError{Kind: riot.KindNetwork, Endpoint: "match-by-id", Err: errors.New("dial tcp: timeout")},
			"internet connection",
		},
		{
			"not in game is an expected outcome",
			&riot.APIError{Kind: riot.KindNotInGame, StatusCode: 404, Endpoint: "active-game-by-summoner"},
			"not in an active game",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			message := errorMessage("fetching stats", "PlayerOne#EUW", tt.err)
			if !strings.Contains(message, tt.wantHint) {
				t.Errorf("Expected hint %q in:\n%s", tt.wantHint, message)
			}
			if !strings.Contains(message, `"PlayerOne#EUW"`) {
				t.Errorf("Expected the searched riot id in:\n%s", message)
			}
		})
	}
}

func TestErrorMessage_UpstreamCarriesStatus(t *testing.T) {
	err := &riot.APIError{Kind: riot.KindUpstream, StatusCode: 502, Endpoint: "match-by-id"}

	message := errorMessage("fetching stats", "PlayerOne#EUW", err)
	if !strings.Contains(message, "HTTP 502") {
		t.Errorf("Expected the HTTP status in:\n%s", message)
	}
}

func TestErrorMessage_NonAPIError(t *testing.T) {
	message := errorMessage("fetching stats", "PlayerOne#EUW", errors.New("boom"))
	if !strings.Contains(message, "boom") {
		t.Errorf("Expected the raw error in:\n%s", message)
	}
}

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&riot.APIError{Kind: riot.KindNotFound}, "not_found"},
		{&riot.APIError{Kind: riot.KindNotInGame}, "not_in_game"},
		{&riot.APIError{Kind: riot.KindRateLimited}, "rate_limited"},
		{errors.New("boom"), "error"},
	}

	for _, tt := range tests {
		if got := errorStatus(tt.err); got != tt.want {
			t.Errorf("errorStatus(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestBuildCoachPrompt(t *testing.T) {
	prompt := buildCoachPrompt(sampleStats())

	if !strings.Contains(prompt, "PlayerOne#EUW") {
		t.Errorf("Expected the player name in the prompt:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Solo/Duo 3W-2L") {
		t.Errorf("Expected the record in the prompt:\n%s", prompt)
	}
	if !strings.Contains(prompt, "- Lux (Solo/Duo): win, 5/2/7 in 28min") {
		t.Errorf("Expected per-match lines in the prompt:\n%s", prompt)
	}
}

func TestCoachCommentary_NoClientConfigured(t *testing.T) {
	bot := &DiscordBot{}

	_, err := bot.coachCommentary(context.Background(), sampleStats())
	if err == nil {
		t.Error("Expected an error without an OpenAI client")
	}
}
