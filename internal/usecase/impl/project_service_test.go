package impl

import (
	"context"
	"testing"
	"time"

	"agadev/internal/domain/entity"
	domainerrors "agadev/internal/domain/errors"
	"agadev/internal/domain/repository"
	mockRepo "agadev/internal/mocks/repository"
	mockSvc "agadev/internal/mocks/service"
	"agadev/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type projectServiceFixtures struct {
	service    usecase.ProjectUsecase
	repo       *mockRepo.MockProjectRepository
	translator *mockSvc.MockTranslator
	publisher  *mockSvc.MockEventPublisher
}

func createTestProjectService(t *testing.T) projectServiceFixtures {
	repo := mockRepo.NewMockProjectRepository(t)
	translator := mockSvc.NewMockTranslator(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	srv := NewProjectService(repo, translator, scriptStripper{}, publisher, &stubQR{}, newDiscardLogger())
	srv.(*projectService).now = fixedClock

	return projectServiceFixtures{
		service:    srv,
		repo:       repo,
		translator: translator,
		publisher:  publisher,
	}
}

func TestProjectService_Create_DefaultsToActive(t *testing.T) {
	fx := createTestProjectService(t)
	ctx := context.Background()

	fx.repo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Project")).Return(nil)

	project, err := fx.service.Create(ctx, usecase.ProjectInput{
		TitleFR:       ptr("Forage à Lambaréné"),
		DescriptionFR: ptr("Accès à l'eau"),
		ContentFR:     ptr("<p>Détails</p>"),
		Budget:        ptr(15000.0),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ProjectStatusActive, project.Status)
	assert.Equal(t, "forage-a-lambarene", project.Slug)
	require.NotNil(t, project.Budget)
	assert.InDelta(t, 15000.0, *project.Budget, 0.001)
}

func TestProjectService_Create_Validation(t *testing.T) {
	fx := createTestProjectService(t)
	start := fixedNow
	end := fixedNow.Add(-24 * time.Hour)

	_, err := fx.service.Create(context.Background(), usecase.ProjectInput{
		TitleFR:       ptr("Ecole"),
		DescriptionFR: ptr("d"),
		ContentFR:     ptr("c"),
		Status:        ptr(entity.ProjectStatus("paused")),
		StartDate:     &start,
		EndDate:       &end,
	})

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	fields := make([]string, 0, len(validationErr.Fields))
	for _, f := range validationErr.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"status", "end_date"}, fields)
}

func TestProjectService_Create_UnsluggableTitleSkipsTranslation(t *testing.T) {
	fx := createTestProjectService(t)

	_, err := fx.service.Create(context.Background(), usecase.ProjectInput{
		TitleFR:       ptr("---"),
		DescriptionFR: ptr("d"),
		ContentFR:     ptr("c"),
		AutoTranslate: true,
	})

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "slug", validationErr.Fields[0].Field)
	fx.translator.AssertNotCalled(t, "Translate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProjectService_Create_AutoTranslateFailureIsNonFatal(t *testing.T) {
	fx := createTestProjectService(t)
	ctx := context.Background()

	fx.translator.EXPECT().
		Translate(ctx, mock.Anything, entity.LangFR, entity.LangEN).
		Return("", assert.AnError)
	fx.repo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	project, err := fx.service.Create(ctx, usecase.ProjectInput{
		TitleFR:       ptr("Ecole"),
		DescriptionFR: ptr("d"),
		ContentFR:     ptr("c"),
		AutoTranslate: true,
	})
	require.NoError(t, err)
	assert.Empty(t, project.TitleEN)
	assert.Empty(t, project.DescriptionEN)
}

func TestProjectService_Create_DuplicateSlug(t *testing.T) {
	fx := createTestProjectService(t)
	ctx := context.Background()

	fx.repo.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.ErrProjectSlugConflict)

	_, err := fx.service.Create(ctx, usecase.ProjectInput{TitleFR: ptr("Ecole"), DescriptionFR: ptr("d"), ContentFR: ptr("c")})
	assert.ErrorIs(t, err, domainerrors.ErrProjectSlugConflict)
}

func TestProjectService_ListPublished_StatusFilter(t *testing.T) {
	fx := createTestProjectService(t)
	ctx := context.Background()
	page := repository.Page{Number: 1, Limit: 10}

	fx.repo.EXPECT().
		List(ctx, repository.ProjectFilter{Page: page, PublishedOnly: true, Status: entity.ProjectStatusCompleted}).
		Return([]*entity.Project{}, int64(0), nil)

	items, pagination, err := fx.service.ListPublished(ctx, page, entity.ProjectStatusCompleted)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Zero(t, pagination.Pages)

	_, _, err = fx.service.ListPublished(ctx, page, "bogus")
	var validationErr *domainerrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestProjectService_SetPublishedAndDelete(t *testing.T) {
	fx := createTestProjectService(t)
	ctx := context.Background()

	fx.repo.EXPECT().FindByID(ctx, int64(7)).Return(&entity.Project{ID: 7, Slug: "ecole"}, nil)
	fx.repo.EXPECT().
		SetPublished(ctx, int64(7), true, mock.AnythingOfType("*time.Time")).
		Return(&entity.Project{ID: 7, Slug: "ecole", Published: true}, nil)
	fx.repo.EXPECT().Delete(ctx, int64(7)).Return(nil)
	fx.publisher.EXPECT().PublishContentEvent(ctx, mock.Anything).Return(nil).Times(2)

	project, err := fx.service.SetPublished(ctx, 7, true)
	require.NoError(t, err)
	assert.True(t, project.Published)

	require.NoError(t, fx.service.Delete(ctx, 7))

	fx.repo.EXPECT().FindByID(ctx, int64(8)).Return(nil, repository.ErrProjectNotFound)
	assert.ErrorIs(t, fx.service.Delete(ctx, 8), domainerrors.ErrProjectNotFound)
}
