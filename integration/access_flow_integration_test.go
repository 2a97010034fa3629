package integration_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"tessalp/internal/access"
	"tessalp/internal/coach"
	"tessalp/internal/gym"
	"tessalp/internal/member"
)

type noopNotifier struct{}

func (noopNotifier) SendAccessRequested(ctx context.Context, to, coachName string) error {
	return nil
}

func (noopNotifier) SendAccessDecision(ctx context.Context, to, status string) error {
	return nil
}

type accessFixture struct {
	service access.Service
	repo    access.Repository
	coachID int
	member  *member.Member
}

func setupAccessFixture(t *testing.T, conn *sqlx.DB) accessFixture {
	ctx := context.Background()

	gymSvc := gym.NewService(gym.NewRepository(conn), "test-access-key")
	g := createTestGym(t, gymSvc, "Tessalp Centro")

	memberRepo := member.NewRepository(conn)
	account, err := memberRepo.CreateAccount(ctx, "Carla Entrenadora", "carla@tessalp.test", "x", "coach")
	require.NoError(t, err)

	coachRepo := coach.NewRepository(conn)
	profile, err := coachRepo.CreateProfile(ctx, account.ID, "Fuerza", nil)
	require.NoError(t, err)

	m, err := memberRepo.CreateMember(ctx, &member.Member{
		GymID:          g.ID,
		Name:           "Marta Socia",
		Email:          "marta@tessalp.test",
		MembershipType: "Plan Básico",
		Status:         "active",
		CheckinCode:    uuid.NewString(),
	})
	require.NoError(t, err)

	repo := access.NewRepository(conn)
	svc := access.NewService(repo, memberRepo, coachRepo, noopNotifier{})

	return accessFixture{service: svc, repo: repo, coachID: profile.ID, member: m}
}

func TestAccessRequestLifecycle_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	conn := setupTestDB(t)
	defer conn.Close()
	cleanDatabase(t, conn)

	fx := setupAccessFixture(t, conn)
	ctx := context.Background()

	req, err := fx.service.CreateRequest(ctx, fx.coachID, access.CreateRequest{
		MemberID: fx.member.ID,
		Notes:    "Quiero revisar tu rutina",
	})
	require.NoError(t, err)
	require.Equal(t, access.StatusPending, req.Status)
	require.Nil(t, req.RespondedAt)

	// A second request for the same pair is rejected while one is open.
	_, err = fx.service.CreateRequest(ctx, fx.coachID, access.CreateRequest{MemberID: fx.member.ID})
	require.ErrorIs(t, err, access.ErrDuplicateRequest)

	resp, err := fx.service.Respond(ctx, access.RespondRequest{RequestID: req.ID, Action: "APPROVE"})
	require.NoError(t, err)
	require.Equal(t, access.StatusApproved, resp.Status)

	resolved, err := fx.repo.GetByID(ctx, req.ID)
	require.NoError(t, err)
	require.Equal(t, access.StatusApproved, resolved.Status)
	require.NotNil(t, resolved.RespondedAt)
	firstRespondedAt := *resolved.RespondedAt

	// Responding again must not flip the status or rewrite the timestamp.
	_, err = fx.service.Respond(ctx, access.RespondRequest{RequestID: req.ID, Action: "REJECT"})
	require.ErrorIs(t, err, access.ErrAlreadyResolved)

	resolved, err = fx.repo.GetByID(ctx, req.ID)
	require.NoError(t, err)
	require.Equal(t, access.StatusApproved, resolved.Status)
	require.Equal(t, firstRespondedAt, *resolved.RespondedAt)
}

func TestAccessRequestListings_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	conn := setupTestDB(t)
	defer conn.Close()
	cleanDatabase(t, conn)

	fx := setupAccessFixture(t, conn)
	ctx := context.Background()

	req, err := fx.service.CreateRequest(ctx, fx.coachID, access.CreateRequest{MemberID: fx.member.ID})
	require.NoError(t, err)

	forMember, err := fx.service.ListForMember(ctx, fx.member.ID)
	require.NoError(t, err)
	require.Len(t, forMember, 1)
	require.Equal(t, req.ID, forMember[0].ID)
	require.Equal(t, "Carla Entrenadora", forMember[0].CoachName)

	forCoach, err := fx.service.ListForCoach(ctx, fx.coachID)
	require.NoError(t, err)
	require.Len(t, forCoach, 1)
	require.Equal(t, "Marta Socia", forCoach[0].MemberName)
}
