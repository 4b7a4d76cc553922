//go:build integration

package postgres

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/sheponsu/blood-aid-server/internal/apperrors"
	"github.com/sheponsu/blood-aid-server/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRequest(t *testing.T, repo *RequestRepository, email, bloodGroup, division, district string, status domain.RequestStatus) string {
	t.Helper()

	ctx := context.Background()

	id, err := repo.Create(ctx, &domain.DonationRequest{
		RequesterName:  "Requester",
		RequesterEmail: email,
		RecipientName:  "Recipient",
		HospitalName:   "Dhaka Medical College",
		FullAddress:    "Secretariat Road",
		Division:       division,
		District:       district,
		BloodGroup:     bloodGroup,
		DonationDate:   "2026-09-10",
		DonationTime:   "10:30",
		Status:         domain.StatusPending,
	})
	require.NoError(t, err)

	if status != domain.StatusPending {
		name := "Donor"
		donorEmail := "donor@example.com"

		var dn, de *string
		if status.RequiresDonor() {
			dn, de = &name, &donorEmail
		}

		_, err = repo.UpdateStatus(ctx, id, status, dn, de)
		require.NoError(t, err)
	}

	return id
}

func TestRequestRepository_CreateAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	truncateTables(t, testDB)
	repo := NewRequestRepository(testDB, logger)
	ctx := context.Background()

	id := seedRequest(t, repo, "rahim@example.com", "O+", "Dhaka", "Dhaka", domain.StatusPending)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, domain.StatusPending, got.Status)
	assert.Nil(t, got.DonorName)
	assert.Nil(t, got.DonorEmail)
	assert.False(t, got.CreatedAt.IsZero())

	_, err = repo.GetByID(ctx, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRequestRepository_Ordering(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	truncateTables(t, testDB)
	repo := NewRequestRepository(testDB, logger)
	ctx := context.Background()

	first := seedRequest(t, repo, "rahim@example.com", "O+", "Dhaka", "Dhaka", domain.StatusPending)
	time.Sleep(10 * time.Millisecond)
	second := seedRequest(t, repo, "rahim@example.com", "A-", "Khulna", "Jessore", domain.StatusPending)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second, all[0].ID, "most recent request should come first")
	assert.Equal(t, first, all[1].ID)

	mine, err := repo.GetByRequester(ctx, "RAHIM@EXAMPLE.COM")
	require.NoError(t, err)
	assert.Len(t, mine, 2, "requester lookup should be case-insensitive")
}

func TestRequestRepository_Search(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	truncateTables(t, testDB)
	repo := NewRequestRepository(testDB, logger)
	ctx := context.Background()

	match := seedRequest(t, repo, "a@example.com", "O+", "Dhaka", "Dhaka", domain.StatusPending)
	time.Sleep(5 * time.Millisecond)
	seedRequest(t, repo, "b@example.com", "A+", "Dhaka", "Dhaka", domain.StatusPending)
	time.Sleep(5 * time.Millisecond)
	seedRequest(t, repo, "c@example.com", "O+", "Khulna", "Jessore", domain.StatusPending)
	seedRequest(t, repo, "d@example.com", "O+", "Dhaka", "Dhaka", domain.StatusDone)

	results, err := repo.Search(ctx, domain.RequestFilter{
		BloodGroup: "O+",
		Division:   "dha",
	})
	require.NoError(t, err)
	require.Len(t, results, 1, "filters are conjunctive and restricted to pending")
	assert.Equal(t, match, results[0].ID)

	pending, err := repo.GetPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 3)

	all, err := repo.Search(ctx, domain.RequestFilter{})
	require.NoError(t, err)
	require.Len(t, all, len(pending))
	for i := range pending {
		assert.Equal(t, pending[i].ID, all[i].ID, "empty filter returns the pending list in the same order")
	}

	none, err := repo.Search(ctx, domain.RequestFilter{BloodGroup: "AB-"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRequestRepository_UpdateStatus(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	truncateTables(t, testDB)
	repo := NewRequestRepository(testDB, logger)
	ctx := context.Background()

	id := seedRequest(t, repo, "rahim@example.com", "O+", "Dhaka", "Dhaka", domain.StatusPending)

	donorName := "Karim"
	donorEmail := "karim@example.com"

	modified, err := repo.UpdateStatus(ctx, id, domain.StatusAccepted, &donorName, &donorEmail)
	require.NoError(t, err)
	assert.Equal(t, int64(1), modified)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAccepted, got.Status)
	require.NotNil(t, got.DonorName)
	assert.Equal(t, donorName, *got.DonorName)
	require.NotNil(t, got.DonorEmail)
	assert.Equal(t, donorEmail, *got.DonorEmail)

	// Cancelling clears the pair in the same statement.
	modified, err = repo.UpdateStatus(ctx, id, domain.StatusCanceled, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), modified)

	got, err = repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCanceled, got.Status)
	assert.Nil(t, got.DonorName)
	assert.Nil(t, got.DonorEmail)

	modified, err = repo.UpdateStatus(ctx, "00000000-0000-0000-0000-000000000000", domain.StatusCanceled, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), modified)
}

func TestRequestRepository_ConcurrentTransitions(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	truncateTables(t, testDB)
	repo := NewRequestRepository(testDB, logger)
	ctx := context.Background()

	type donor struct{ name, email string }

	karim := donor{"Karim", "karim@example.com"}
	salma := donor{"Salma", "salma@example.com"}

	// Two donors race to claim the same request. The single-statement UPDATE
	// resolves last-writer-wins: the stored row must hold one complete pair,
	// never a name from one donor next to the email of the other.
	for i := 0; i < 10; i++ {
		id := seedRequest(t, repo, "rahim@example.com", "O+", "Dhaka", "Dhaka", domain.StatusPending)

		start := make(chan struct{})
		var wg sync.WaitGroup

		for _, d := range []donor{karim, salma} {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start

				modified, err := repo.UpdateStatus(ctx, id, domain.StatusAccepted, &d.name, &d.email)
				assert.NoError(t, err)
				assert.Equal(t, int64(1), modified)
			}()
		}

		close(start)
		wg.Wait()

		got, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusAccepted, got.Status)
		require.NotNil(t, got.DonorName)
		require.NotNil(t, got.DonorEmail)

		winner := donor{*got.DonorName, *got.DonorEmail}
		assert.Contains(t, []donor{karim, salma}, winner, "stored donor pair must belong to exactly one writer")
	}
}

func TestRequestRepository_DonorPairConstraint(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	truncateTables(t, testDB)
	repo := NewRequestRepository(testDB, logger)
	ctx := context.Background()

	id := seedRequest(t, repo, "rahim@example.com", "O+", "Dhaka", "Dhaka", domain.StatusPending)

	donorName := "Karim"

	// The schema rejects a half-set donor pair even if a caller bypasses the
	// service-level checks.
	_, err := repo.UpdateStatus(ctx, id, domain.StatusAccepted, &donorName, nil)
	assert.Error(t, err)
}

func TestRequestRepository_Delete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	truncateTables(t, testDB)
	repo := NewRequestRepository(testDB, logger)
	ctx := context.Background()

	id := seedRequest(t, repo, "rahim@example.com", "O+", "Dhaka", "Dhaka", domain.StatusPending)

	deleted, err := repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	deleted, err = repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted, "repeated delete reports zero, not an error")

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestRequestRepository_Update(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	truncateTables(t, testDB)
	repo := NewRequestRepository(testDB, logger)
	ctx := context.Background()

	id := seedRequest(t, repo, "rahim@example.com", "O+", "Dhaka", "Dhaka", domain.StatusPending)

	hospital := "Square Hospital"

	modified, err := repo.Update(ctx, id, domain.RequestUpdate{HospitalName: &hospital})
	require.NoError(t, err)
	assert.Equal(t, int64(1), modified)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, hospital, got.HospitalName)
	assert.Equal(t, "O+", got.BloodGroup, "untouched fields keep their values")

	modified, err = repo.Update(ctx, id, domain.RequestUpdate{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), modified, "empty update writes nothing")
}
