package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/farmsync/internal/client/models"
	"github.com/dmitrijs2005/farmsync/internal/common"
	"github.com/dmitrijs2005/farmsync/internal/logging"
)

func TestPlotService_RefreshAndList(t *testing.T) {
	e := newEnv(t, defaultOptions())
	e.sink.plots = []*models.Plot{
		{ID: "b", Name: "South", Crop: "barley"},
		{ID: "a", Name: "North", Crop: "corn", AreaHa: 2},
	}
	svc := NewPlotService(e.sink, e.store.Plots(), e.mon, time.Second, logging.NewDiscardLogger())

	_, err := svc.Refresh(context.Background())
	require.ErrorIs(t, err, common.ErrOffline)

	e.mon.Notify(true)
	n, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	e.mon.Notify(false)
	plots, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, plots, 2)
	assert.Equal(t, "North", plots[0].Name)

	p, err := svc.Get(context.Background(), "b")
	require.NoError(t, err)
	assert.Equal(t, "barley", p.Crop)
}

func TestPlotService_RefreshErrorKeepsCache(t *testing.T) {
	e := newEnv(t, defaultOptions())
	e.mon.Notify(true)
	e.sink.plots = []*models.Plot{{ID: "a", Name: "North"}}
	svc := NewPlotService(e.sink, e.store.Plots(), e.mon, time.Second, logging.NewDiscardLogger())

	_, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	e.sink.listErr = errors.New("boom")
	_, err = svc.Refresh(context.Background())
	require.Error(t, err)

	plots, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, plots, 1)
}
