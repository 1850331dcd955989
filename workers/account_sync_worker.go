// workers/account_sync_worker.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"sports-community-system/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RemoteAccount matches the JSON the credential service exposes on its
// profile-changes endpoint.
type RemoteAccount struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Phone     *string   `json:"phone,omitempty"`
	Role      string    `json:"role"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	Location  *string   `json:"location,omitempty"`
	Bio       *string   `json:"bio,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetAccountChangesResponse is the top-level shape of the sync
// endpoint response.
type GetAccountChangesResponse struct {
	Users []RemoteAccount `json:"users"`
}

// AccountSyncWorker mirrors account profiles from the external
// credential service into the local users table. It only ever writes
// profile columns: points, participation_count and wins are owned here
// and must survive every upsert.
type AccountSyncWorker struct {
	db           *gorm.DB
	interval     time.Duration
	baseURL      string
	endpointPath string
	serviceToken string
	httpClient   *http.Client

	// cursor is the high-water mark of remote updated_at timestamps
	// already applied. It is tracked here and not derived from the
	// local rows' updated_at, which profile edits on this side also
	// bump. A restart replays from the beginning; the upserts make
	// that harmless.
	cursor time.Time
}

func NewAccountSyncWorker(db *gorm.DB, authServiceBaseURL, endpointPath, serviceToken string) *AccountSyncWorker {
	return &AccountSyncWorker{
		db:           db,
		interval:     1 * time.Minute,
		baseURL:      authServiceBaseURL,
		endpointPath: endpointPath,
		serviceToken: serviceToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (w *AccountSyncWorker) Start(ctx context.Context) {
	log.Println("Starting account sync worker (credential service -> users)")
	go w.run(ctx)
}

func (w *AccountSyncWorker) run(ctx context.Context) {
	// Initial sync backfills from the beginning of time.
	if err := w.syncBatch(ctx, w.cursor); err != nil {
		log.Printf("[SYNC] initial sync failed: %v", err)
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.syncBatch(ctx, w.cursor); err != nil {
				log.Printf("[SYNC] sync batch failed: %v", err)
			}
		case <-ctx.Done():
			log.Println("account sync worker stopped")
			return
		}
	}
}

func (w *AccountSyncWorker) syncBatch(ctx context.Context, since time.Time) error {
	sinceStr := since.UTC().Format(time.RFC3339)

	base, err := url.Parse(w.baseURL)
	if err != nil {
		return fmt.Errorf("invalid credential service URL %q: %w", w.baseURL, err)
	}
	endpointURL := base.JoinPath(w.endpointPath)
	q := endpointURL.Query()
	q.Set("since", sinceStr)
	endpointURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, "GET", endpointURL.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create sync request: %w", err)
	}
	req.Header.Set("X-Service-Token", w.serviceToken)

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request to credential service failed: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("credential service non-200 response: %d — %s", resp.StatusCode, string(body))
	}

	var response GetAccountChangesResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return fmt.Errorf("failed to decode credential service response: %w", err)
	}
	if len(response.Users) == 0 {
		return nil
	}

	var upserted, failed int
	maxSeen := w.cursor
	for _, remote := range response.Users {
		role := remote.Role
		if !models.ValidRole(role) {
			role = models.RolePlayer
		}
		local := models.User{
			ID: remote.ID,
			// Stored lowercase, like CreateAccount, so the unique
			// index keeps emails unique case-insensitively.
			Email: strings.ToLower(strings.TrimSpace(remote.Email)),
			FullName:  remote.FullName,
			Phone:     remote.Phone,
			Role:      role,
			AvatarURL: remote.AvatarURL,
			Location:  remote.Location,
			Bio:       remote.Bio,
			CreatedAt: remote.CreatedAt,
			UpdatedAt: remote.UpdatedAt,
		}

		// Profile columns only — never the reputation counters.
		if err := w.db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"email", "full_name", "phone", "role",
				"avatar_url", "location", "bio", "updated_at",
			}),
		}).Create(&local).Error; err != nil {
			failed++
			log.Printf("[SYNC] failed to upsert user (id=%q, email=%q): %v", remote.ID, remote.Email, err)
		} else {
			upserted++
		}
		if remote.UpdatedAt.After(maxSeen) {
			maxSeen = remote.UpdatedAt
		}
	}

	// Advance the cursor only when the whole batch applied, so a failed
	// row is retried on the next tick instead of skipped forever.
	if failed == 0 {
		w.cursor = maxSeen
	}

	log.Printf("[SYNC] synced %d account(s) (%d upserted, %d errors) since %s",
		len(response.Users), upserted, failed, sinceStr)
	return nil
}
