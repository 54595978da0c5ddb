package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/bankroll_app/internal/events"
	"github.com/SscSPs/bankroll_app/internal/handlers"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
)

type EventsHandlerTestSuite struct {
	handlerSuite
	bus    *events.Bus
	server *httptest.Server
}

func (suite *EventsHandlerTestSuite) SetupTest() {
	suite.setupRouter()
	suite.bus = events.NewBus()
	handlers.RegisterEventRoutes(suite.v1, suite.bus, nil)
	suite.server = httptest.NewServer(suite.router)
}

func (suite *EventsHandlerTestSuite) TearDownTest() {
	suite.server.Close()
}

func TestEventsHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EventsHandlerTestSuite))
}

func (suite *EventsHandlerTestSuite) wsURL() string {
	return "ws" + strings.TrimPrefix(suite.server.URL, "http") + "/api/v1/events"
}

func (suite *EventsHandlerTestSuite) TestStreamsPublishedEvents() {
	header := http.Header{"Authorization": []string{"Bearer " + suite.generateTestToken(testUserID)}}
	conn, _, err := websocket.DefaultDialer.Dial(suite.wsURL(), header)
	suite.Require().NoError(err)
	defer conn.Close()

	suite.Require().Eventually(func() bool { return suite.bus.Subscribers() == 1 }, time.Second, 10*time.Millisecond)

	suite.bus.Publish(events.Event{Name: events.SessionVerified, EntityKind: "online_session", EntityID: "sess-1"})

	suite.Require().NoError(conn.SetReadDeadline(time.Now().Add(2 * time.Second)))
	var got events.Event
	suite.Require().NoError(conn.ReadJSON(&got))
	suite.Equal(events.SessionVerified, got.Name)
	suite.Equal("sess-1", got.EntityID)
	suite.False(got.OccurredAt.IsZero())
}

func (suite *EventsHandlerTestSuite) TestTokenInQuery() {
	url := suite.wsURL() + "?token=" + suite.generateTestToken(testUserID)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	suite.Require().NoError(err)
	conn.Close()

	suite.Eventually(func() bool { return suite.bus.Subscribers() == 0 }, 2*time.Second, 10*time.Millisecond, "closing the socket unsubscribes")
}

func (suite *EventsHandlerTestSuite) TestRequiresToken() {
	_, resp, err := websocket.DefaultDialer.Dial(suite.wsURL(), nil)
	suite.Error(err)
	suite.Require().NotNil(resp)
	suite.Equal(http.StatusUnauthorized, resp.StatusCode)
}
