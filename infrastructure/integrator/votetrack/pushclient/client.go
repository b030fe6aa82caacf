// Package pushclient mantém a conexão WebSocket com o canal de votos ao vivo do VoteTrack
package pushclient

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/satisfaction-monitor-api/infrastructure/integrator/votetrack"
	votetrackdomain "github.com/vfg2006/satisfaction-monitor-api/infrastructure/integrator/votetrack/domain"
	"github.com/vfg2006/satisfaction-monitor-api/internal/livefeed"
	"github.com/vfg2006/satisfaction-monitor-api/pkg/log"
	"github.com/vfg2006/satisfaction-monitor-api/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var errNotConnected = errors.New("pushclient: sem conexão ativa")

// Broker é o destino das mensagens recebidas; as salas ativas são reenviadas a cada reconexão
type Broker interface {
	Publish(msg livefeed.Message)
	Rooms() []string
}

type Config struct {
	URL          string
	Token        string
	WriteTimeout time.Duration
	MinBackoff   time.Duration
	MaxBackoff   time.Duration
}

type Client struct {
	cfg    Config
	dialer *websocket.Dialer
	now    func() time.Time

	mu     sync.Mutex
	conn   *websocket.Conn
	broker Broker
}

func New(cfg Config) *Client {
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 5 * time.Second
	}
	if cfg.MinBackoff <= 0 {
		cfg.MinBackoff = time.Second
	}
	if cfg.MaxBackoff < cfg.MinBackoff {
		cfg.MaxBackoff = 30 * time.Second
	}
	return &Client{
		cfg: cfg,
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: 10 * time.Second,
		},
		now: time.Now,
	}
}

// Attach liga o cliente ao broker. É separado de New porque o broker recebe
// Join/Leave do cliente como ganchos de sala.
func (c *Client) Attach(broker Broker) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.broker = broker
}

func (c *Client) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

// Join entra na sala da empresa no backend. Sem conexão a entrada acontece na próxima reconexão.
func (c *Client) Join(companyID string) {
	c.sendRoomEvent(votetrackdomain.EventJoinCompany, companyID)
}

func (c *Client) Leave(companyID string) {
	c.sendRoomEvent(votetrackdomain.EventLeaveCompany, companyID)
}

// Run conecta e reconecta com backoff exponencial até o contexto ser cancelado
func (c *Client) Run(ctx context.Context) error {
	backoff := c.cfg.MinBackoff

	for {
		conn, err := c.dial(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			log.L.WithError(err).WithField("retry_in", backoff.String()).Warn("pushclient: falha ao conectar, nova tentativa agendada")

			select {
			case <-ctx.Done():
				return nil
			case <-time.After(backoff):
			}

			backoff *= 2
			if backoff > c.cfg.MaxBackoff {
				backoff = c.cfg.MaxBackoff
			}
			continue
		}

		backoff = c.cfg.MinBackoff
		c.activate(conn)

		log.L.WithField("url", c.cfg.URL).Info("pushclient: conectado ao canal ao vivo")

		err = c.readLoop(ctx, conn)

		c.setConn(nil)
		_ = conn.Close()

		if ctx.Err() != nil {
			return nil
		}
		log.L.WithError(err).Warn("pushclient: conexão perdida")
	}
}

func (c *Client) dial(ctx context.Context) (*websocket.Conn, error) {
	header := http.Header{}
	if c.cfg.Token != "" {
		header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	conn, resp, err := c.dialer.DialContext(ctx, c.cfg.URL, header)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return nil, errors.Wrap(err, "pushclient: handshake")
	}
	return conn, nil
}

func (c *Client) readLoop(ctx context.Context, conn *websocket.Conn) error {
	stop := make(chan struct{})
	defer close(stop)

	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-stop:
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return err
		}

		var frame votetrackdomain.PushFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			log.L.WithError(err).Warn("pushclient: mensagem inválida ignorada")
			continue
		}

		if msg, ok := c.toMessage(frame); ok {
			c.publish(msg)
		}
	}
}

func (c *Client) toMessage(frame votetrackdomain.PushFrame) (livefeed.Message, bool) {
	msg := livefeed.Message{
		CompanyID:  fromRoom(frame.CompanyID.String()),
		ReceivedAt: c.now(),
	}

	switch frame.Event {
	case votetrackdomain.EventNewVote:
		var raw votetrackdomain.Vote
		if err := json.Unmarshal(frame.Data, &raw); err != nil {
			metrics.LiveUpdates.WithLabelValues(string(livefeed.KindVote), "invalid").Inc()
			log.L.WithError(err).Warn("pushclient: voto inválido ignorado")
			return msg, false
		}
		vote := votetrack.NormalizeVote(raw)
		if vote.CompanyID == "" {
			vote.CompanyID = msg.CompanyID
		}
		msg.Kind = livefeed.KindVote
		msg.CompanyID = vote.CompanyID
		msg.Vote = &vote
		return msg, true

	case votetrackdomain.EventVoteUpdate:
		var raw votetrackdomain.Analytics
		if err := json.Unmarshal(frame.Data, &raw); err != nil {
			metrics.LiveUpdates.WithLabelValues(string(livefeed.KindSnapshot), "invalid").Inc()
			log.L.WithError(err).Warn("pushclient: resumo inválido ignorado")
			return msg, false
		}
		snapshot := votetrack.NormalizeSnapshot(raw)
		if snapshot.CompanyID == "" {
			snapshot.CompanyID = msg.CompanyID
		}
		msg.Kind = livefeed.KindSnapshot
		msg.CompanyID = snapshot.CompanyID
		msg.Snapshot = &snapshot
		return msg, true
	}

	log.L.WithField("event", frame.Event).Debug("pushclient: evento ignorado")
	return msg, false
}

func (c *Client) publish(msg livefeed.Message) {
	c.mu.Lock()
	broker := c.broker
	c.mu.Unlock()

	if broker != nil {
		broker.Publish(msg)
	}
}

// activate publica a conexão e reenvia as salas ativas sob o mesmo lock, para que
// nenhum Join/Leave dos ganchos do broker seja intercalado com o reenvio
func (c *Client) activate(conn *websocket.Conn) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.conn = conn
	if c.broker == nil {
		return
	}
	for _, room := range c.broker.Rooms() {
		if err := c.writeLocked(roomFrame(votetrackdomain.EventJoinCompany, room)); err != nil {
			log.L.WithError(err).WithField("company_id", room).Warn("pushclient: falha ao reentrar na sala")
		}
	}
}

func (c *Client) sendRoomEvent(event, companyID string) {
	if err := c.write(roomFrame(event, companyID)); err != nil && !errors.Is(err, errNotConnected) {
		log.L.WithError(err).WithFields(log.Fields{
			"event":      event,
			"company_id": companyID,
		}).Warn("pushclient: falha ao enviar evento de sala")
	}
}

// write serializa as escritas; o gorilla/websocket aceita apenas um escritor por vez
func (c *Client) write(frame votetrackdomain.PushFrame) error {
	data, err := json.Marshal(frame)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.writeRawLocked(data)
}

func (c *Client) writeLocked(frame votetrackdomain.PushFrame) error {
	data, err := json.Marshal(frame)
	if err != nil {
		return err
	}
	return c.writeRawLocked(data)
}

func (c *Client) writeRawLocked(data []byte) error {
	if c.conn == nil {
		return errNotConnected
	}
	_ = c.conn.SetWriteDeadline(c.now().Add(c.cfg.WriteTimeout))
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

func roomFrame(event, companyID string) votetrackdomain.PushFrame {
	return votetrackdomain.PushFrame{
		Event:     event,
		CompanyID: votetrackdomain.FlexibleID(toRoom(companyID)),
	}
}

func (c *Client) setConn(conn *websocket.Conn) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn = conn
}

func toRoom(companyID string) string {
	if companyID == livefeed.AllCompanies {
		return votetrackdomain.AllCompaniesRoom
	}
	return companyID
}

func fromRoom(room string) string {
	if room == votetrackdomain.AllCompaniesRoom {
		return livefeed.AllCompanies
	}
	return room
}
