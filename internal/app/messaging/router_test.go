package messaging_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/duopane/internal/app/messaging"
	"github.com/bnema/duopane/internal/app/messaging/mocks"
	"github.com/bnema/duopane/internal/domain/entity"
	"github.com/bnema/duopane/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newRouter(t *testing.T) (*messaging.Router, *mocks.MockBackend, *mocks.MockReplier) {
	t.Helper()
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	replier := mocks.NewMockReplier(ctrl)

	router := messaging.NewRouter(testCtx())
	require.NoError(t, messaging.RegisterAll(testCtx(), router, backend))
	return router, backend, replier
}

func TestRouter_GetSettingsReplies(t *testing.T) {
	router, backend, replier := newRouter(t)
	ctx := testCtx()

	current := entity.DefaultSettings()
	current.SideAURL = "https://a.example"
	backend.EXPECT().GetSettings(gomock.Any()).Return(current)
	replier.EXPECT().
		Send(gomock.Any(), messaging.ResponseMessage, messaging.Response{RequestID: "r1", OK: true, Result: current}).
		Return(nil)

	err := router.Dispatch(ctx, replier, []byte(`{"type":"get-settings","requestId":"r1"}`))

	assert.NoError(t, err)
}

func TestRouter_SaveSettingsPassesOnlySentFields(t *testing.T) {
	router, backend, replier := newRouter(t)
	ctx := testCtx()

	sideB := "https://b.example"
	swapped := true
	want := entity.SettingsPatch{SideBURL: &sideB, Swapped: &swapped}

	backend.EXPECT().SaveSettings(gomock.Any(), want).Return(entity.DefaultSettings())
	replier.EXPECT().
		Send(gomock.Any(), messaging.ResponseMessage, messaging.Response{RequestID: "r2", OK: true, Result: true}).
		Return(nil)

	raw := `{"type":"save-settings","requestId":"r2","payload":{"side_b_url":"https://b.example","swapped":true}}`
	require.NoError(t, router.Dispatch(ctx, replier, []byte(raw)))
}

func TestRouter_SaveSettingsRejectsBadPayload(t *testing.T) {
	router, _, replier := newRouter(t)
	ctx := testCtx()

	replier.EXPECT().
		Send(gomock.Any(), messaging.ResponseMessage, gomock.Cond(func(resp messaging.Response) bool {
			return resp.RequestID == "r3" && !resp.OK && resp.Error != ""
		})).
		Return(nil)

	err := router.Dispatch(ctx, replier, []byte(`{"type":"save-settings","requestId":"r3","payload":"nope"}`))

	assert.Error(t, err)
}

func TestRouter_StreamedMessagesDoNotReply(t *testing.T) {
	router, backend, replier := newRouter(t)
	ctx := testCtx()

	gomock.InOrder(
		backend.EXPECT().UpdateSplitRatio(gomock.Any(), 42.5),
		backend.EXPECT().DragMove(gomock.Any(), float64(310)),
		backend.EXPECT().DragEnd(gomock.Any()),
		backend.EXPECT().OpenSettingsEditor(gomock.Any()),
	)
	// No Send expectation: any reply fails the test.

	for _, raw := range []string{
		`{"type":"update-split-ratio","payload":42.5}`,
		`{"type":"drag-move","requestId":"ignored","payload":310}`,
		`{"type":"drag-end"}`,
		`{"type":"open-settings"}`,
	} {
		require.NoError(t, router.Dispatch(ctx, replier, []byte(raw)), raw)
	}
}

func TestRouter_InvalidNumberIsNotForwarded(t *testing.T) {
	router, _, replier := newRouter(t)

	err := router.Dispatch(testCtx(), replier, []byte(`{"type":"drag-move","payload":"left"}`))

	assert.Error(t, err)
}

func TestRouter_MalformedEnvelope(t *testing.T) {
	router, _, replier := newRouter(t)

	for _, raw := range []string{`{`, `{"payload":1}`} {
		err := router.Dispatch(testCtx(), replier, []byte(raw))
		assert.ErrorIs(t, err, messaging.ErrMalformedMessage, raw)
	}
}

func TestRouter_UnknownTypeAnswersPendingRequest(t *testing.T) {
	router, _, replier := newRouter(t)

	replier.EXPECT().
		Send(gomock.Any(), messaging.ResponseMessage, messaging.Response{RequestID: "r4", Error: "unknown message type"}).
		Return(errors.New("surface gone"))

	err := router.Dispatch(testCtx(), replier, []byte(`{"type":"zoom","requestId":"r4"}`))

	assert.ErrorIs(t, err, messaging.ErrUnknownType)
}

func TestRouter_NilReplierIsTolerated(t *testing.T) {
	router, backend, _ := newRouter(t)

	backend.EXPECT().GetSettings(gomock.Any()).Return(entity.DefaultSettings())

	assert.NoError(t, router.Dispatch(testCtx(), nil, []byte(`{"type":"get-settings","requestId":"r5"}`)))
}

func TestRouter_RegisterValidation(t *testing.T) {
	router := messaging.NewRouter(testCtx())
	noop := messaging.MessageHandlerFunc(func(context.Context, json.RawMessage) (any, error) { return nil, nil })

	assert.Error(t, router.Register("", noop))
	assert.Error(t, router.Register("x", nil))
	require.NoError(t, router.Register("x", noop))
	assert.Error(t, router.RegisterRequest("x", noop))
	assert.ElementsMatch(t, []string{"x"}, router.Types())
}

func TestRegisterAll_CoversEveryMessageType(t *testing.T) {
	router, _, _ := newRouter(t)

	assert.ElementsMatch(t, []string{
		messaging.TypeGetSettings,
		messaging.TypeSaveSettings,
		messaging.TypeUpdateSplitRatio,
		messaging.TypeDragMove,
		messaging.TypeDragEnd,
		messaging.TypeOpenSettings,
	}, router.Types())
}
