package service

import (
	"context"
	"testing"
	"time"

	"presscraft/internal/api/dto"
	"presscraft/internal/entity"
	"presscraft/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFactSheet(prType entity.PrType) entity.FactSheet {
	return entity.FactSheet{
		BrandName:    "데스커",
		ProductName:  "모션데스크",
		PrType:       prType,
		Definition:   "높이 조절 책상",
		Features:     []string{"전동 모터"},
		CoreMessages: []string{"몰입"},
	}
}

func TestGenerateDraft_WithoutEvent(t *testing.T) {
	svc := NewDraftService(newFakeEventRepo(), logger.NewNop())

	resp, err := svc.GenerateDraft(context.Background(), &dto.GenerateDraftRequest{
		FactSheet: sampleFactSheet("activity"),
		Specs:     []entity.SpecItem{{Category: entity.SpecCategoryDimensions, Value: "1200"}},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PrTypeIssue, resp.PrType)
	assert.Contains(t, resp.Draft, "데스커")
	assert.Contains(t, resp.Draft, "모션데스크")
	assert.Len(t, resp.Stories, 1)
	assert.Nil(t, resp.EventID)
}

func TestGenerateDraft_StoresOnEvent(t *testing.T) {
	repo := newFakeEventRepo(entity.PREvent{ID: 7, Title: "런칭", Date: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), Status: entity.EventStatusScheduled})
	svc := NewDraftService(repo, logger.NewNop())
	id := uint(7)

	resp, err := svc.GenerateDraft(context.Background(), &dto.GenerateDraftRequest{
		FactSheet: sampleFactSheet(entity.PrTypeNewProduct),
		EventID:   &id,
	})
	require.NoError(t, err)

	stored := repo.events[7]
	assert.Equal(t, resp.Draft, stored.Content)
	assert.Equal(t, entity.EventStatusDraft, stored.Status)
	assert.Equal(t, "new_product", stored.Type)
}

func TestGenerateDraft_UnknownEvent(t *testing.T) {
	svc := NewDraftService(newFakeEventRepo(), logger.NewNop())
	id := uint(99)

	_, err := svc.GenerateDraft(context.Background(), &dto.GenerateDraftRequest{FactSheet: sampleFactSheet(""), EventID: &id})
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestMapStories_EmptyInput(t *testing.T) {
	svc := NewDraftService(newFakeEventRepo(), logger.NewNop())
	resp := svc.MapStories(&dto.MapStoriesRequest{})
	assert.NotNil(t, resp.Stories)
	assert.Empty(t, resp.Stories)
}
