package lounge

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/sethvargo/go-retry"
)

const timeLayout = "2006-01-02T15:04:05"

// APIClient is a custom lounge API client that implements the LoungeClient interface.
type APIClient struct {
	httpClient  *http.Client
	BaseURL     string
	backoffBase time.Duration
}

// NewClient creates a new lounge client pointed at the given base URL.
func NewClient(baseURL string) LoungeClient {
	return &APIClient{
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		BaseURL:     baseURL,
		backoffBase: time.Second,
	}
}

// Ensure APIClient implements the LoungeClient interface.
var _ LoungeClient = (*APIClient)(nil)

// GetPlayerDetails fetches the per-season, per-game summary for a player.
// A remote 404 surfaces as ErrNotFound, meaning the player never competed
// in that combination.
func (c *APIClient) GetPlayerDetails(ctx context.Context, playerID int64, season int, game GameMode) (*PlayerDetails, error) {
	params := url.Values{}
	params.Set("id", strconv.FormatInt(playerID, 10))
	params.Set("season", strconv.Itoa(season))
	params.Set("game", string(game))

	var resp loungeDetailsResponse
	if err := c.get(ctx, "/player/details", params, &resp); err != nil {
		return nil, err
	}

	details := &PlayerDetails{
		PlayerID:     resp.PlayerID,
		Season:       resp.Season,
		Game:         GameMode(resp.Game),
		EventsPlayed: resp.EventsPlayed,
	}
	// The requested game is authoritative when the payload omits it, which
	// legacy seasons do.
	if details.Game == "" {
		details.Game = game
	}
	for _, change := range resp.MMRChanges {
		entry := MMRChange{
			MatchID: change.ChangeID,
			Reason:  change.Reason,
			Delta:   change.Delta,
			NewMMR:  change.NewMMR,
		}
		if change.Time != "" {
			t, err := time.Parse(timeLayout, change.Time)
			if err != nil {
				log.Warn("Failed to parse mmr change timestamp", "error", err, "playerID", playerID, "changeID", change.ChangeID)
			} else {
				entry.Time = t
			}
		}
		details.MMRChanges = append(details.MMRChanges, entry)
	}
	log.Debug("Fetched player details", "playerID", playerID, "season", season, "game", game, "events", details.EventsPlayed, "changes", len(details.MMRChanges))
	return details, nil
}

// GetMatch fetches a single match (table) by its id.
func (c *APIClient) GetMatch(ctx context.Context, matchID int64) (*Match, error) {
	params := url.Values{}
	params.Set("tableId", strconv.FormatInt(matchID, 10))

	var resp loungeMatchResponse
	if err := c.get(ctx, "/table", params, &resp); err != nil {
		return nil, err
	}

	createdOn, err := time.Parse(timeLayout, resp.CreatedOn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse match created time: %w", err)
	}

	match := &Match{
		ID:         matchID,
		Season:     resp.Season,
		Game:       GameMode(resp.Game),
		Tier:       Tier(resp.Tier),
		Format:     resp.Format,
		NumPlayers: resp.NumPlayers,
		CreatedOn:  createdOn,
	}
	if resp.TableID != 0 {
		match.ID = resp.TableID
	}
	for _, team := range resp.Teams {
		t := Team{Rank: team.Rank}
		for _, score := range team.Scores {
			t.Players = append(t.Players, PlayerResult{
				PlayerID:  score.PlayerID,
				DiscordID: score.DiscordID,
				Score:     score.Score,
				PrevMMR:   score.PrevMMR,
				NewMMR:    score.NewMMR,
				Delta:     score.Delta,
			})
		}
		match.Teams = append(match.Teams, t)
	}
	if match.NumPlayers == 0 {
		for _, team := range match.Teams {
			match.NumPlayers += len(team.Players)
		}
	}
	log.Debug("Fetched match", "matchID", match.ID, "season", match.Season, "players", match.NumPlayers)
	return match, nil
}

// get issues a GET request against the lounge API and decodes the JSON body
// into out. Transient failures (5xx, 429, transport errors) are retried up
// to 3 attempts total with exponential delays of 1s and 2s. A 404 surfaces
// as ErrNotFound and other 4xx as *StatusError, neither of which is retried.
func (c *APIClient) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	requestURL := c.BaseURL + endpoint
	query := url.Values{}
	for key, values := range params {
		for _, value := range values {
			if value != "" {
				query.Add(key, value)
			}
		}
	}
	if encoded := query.Encode(); encoded != "" {
		requestURL += "?" + encoded
	}

	backoff := retry.WithMaxRetries(2, retry.NewExponential(c.backoffBase))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		log.Debug("Requesting lounge API", "url", requestURL)
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return retry.RetryableError(fmt.Errorf("failed to execute request: %w", err))
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices:
			if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
				return fmt.Errorf("failed to decode response: %w", err)
			}
			return nil
		case resp.StatusCode == http.StatusNotFound:
			return ErrNotFound
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
			body, _ := io.ReadAll(resp.Body)
			log.Warn("Received retryable HTTP status from lounge API", "status", resp.StatusCode, "url", requestURL)
			return retry.RetryableError(&StatusError{Code: resp.StatusCode, Body: string(body)})
		default:
			body, _ := io.ReadAll(resp.Body)
			log.Error("Received non-OK HTTP status from lounge API", "status", resp.StatusCode, "body", string(body))
			return &StatusError{Code: resp.StatusCode, Body: string(body)}
		}
	})
}
