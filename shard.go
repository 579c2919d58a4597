package quicmux

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/quicmux/quicmux/internal/protocol"
	"github.com/quicmux/quicmux/internal/utils"
)

// A Shard owns one socket and the dispatcher routing its datagrams. All
// dispatcher and session state of a shard is touched only from the shard's
// run loop; multiple shards run in parallel with no shared mutable state.
type Shard struct {
	conn       net.PacketConn
	reader     packetReader
	writer     PacketWriter
	dispatcher *Dispatcher
	ttl        time.Duration
	logger     *slog.Logger
	rand       *utils.Rand

	closeOnce sync.Once
	closed    chan struct{}
}

// NewShard creates a shard reading from conn. It builds the packet writer and
// the dispatcher for the socket, and applies the configured ECN codepoint.
func NewShard(conn net.PacketConn, config *Config, newSession SessionConstructor) *Shard {
	config = populateConfig(config)
	logger := config.Logger.With(slog.String("component", "shard"))
	if config.ECN != protocol.ECNUnsupported {
		if err := SetECN(conn, config.ECN); err != nil {
			logger.Debug("failed to set the ECN codepoint on the socket", slog.Any("error", err))
		}
	}
	writer := NewSysPacketWriter(conn, config.Logger)
	return &Shard{
		conn:       conn,
		reader:     newPacketReader(conn, logger),
		writer:     writer,
		dispatcher: NewDispatcher(config, writer, newSession),
		ttl:        config.TimeWaitTTL,
		logger:     logger,
		rand:       utils.NewRand(),
		closed:     make(chan struct{}),
	}
}

// Dispatcher returns the shard's dispatcher. It must only be used from code
// running on the shard's loop, i.e. from session callbacks.
func (s *Shard) Dispatcher() *Dispatcher { return s.dispatcher }

// SetWritable clears the packet writer's blocked latch. It is hooked up to
// the socket's writability notification by whoever integrates the shard with
// an external event loop.
func (s *Shard) SetWritable() { s.writer.SetWritable() }

// Run reads datagrams and drives the dispatcher until the context is
// cancelled or the socket fails. Each wakeup of the loop is one dispatcher
// pass: the session creation budget resets, then all pending datagrams are
// processed to completion.
func (s *Shard) Run(ctx context.Context) error {
	packets := make(chan ReceivedPacket, 64)
	readErr := make(chan error, 1)
	go s.readLoop(packets, readErr)

	// The time-wait sweep is jittered, so shards that started together don't
	// sweep in lockstep.
	gcTimer := utils.NewTimer()
	defer gcTimer.Stop()
	gcTimer.Reset(time.Now().Add(s.nextSweepInterval()))

	defer s.dispatcher.Close()
	for {
		select {
		case <-ctx.Done():
			s.Close()
			return ctx.Err()
		case err := <-readErr:
			select {
			case <-s.closed:
				return nil
			default:
			}
			return err
		case p := <-packets:
			s.dispatcher.StartPass()
			s.handlePacket(p)
			// drain whatever else arrived, as part of the same pass
			for done := false; !done; {
				select {
				case p := <-packets:
					s.handlePacket(p)
				default:
					done = true
				}
			}
		case now := <-gcTimer.Chan():
			gcTimer.SetRead()
			s.dispatcher.CollectTimeWait(now)
			gcTimer.Reset(now.Add(s.nextSweepInterval()))
		}
	}
}

// Close shuts the shard down. Run returns after the socket is closed.
func (s *Shard) Close() {
	s.closeOnce.Do(func() {
		close(s.closed)
		s.conn.Close()
	})
}

func (s *Shard) handlePacket(p ReceivedPacket) {
	s.dispatcher.OnPacket(p)
	// Sessions must not retain p.Data beyond HandlePacket.
	putPacketBuffer(p.Data[:0])
}

func (s *Shard) nextSweepInterval() time.Duration {
	return s.ttl + time.Duration(s.rand.Jitter(int64(s.ttl/4)+1))
}

func (s *Shard) readLoop(packets chan<- ReceivedPacket, readErr chan<- error) {
	localAddr := s.conn.LocalAddr()
	for {
		buf := getPacketBuffer()
		n, addr, ecn, err := s.reader.ReadPacket(buf[:cap(buf)])
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				readErr <- nil
				return
			}
			readErr <- err
			return
		}
		p := ReceivedPacket{
			Data:       buf[:n],
			LocalAddr:  localAddr,
			RemoteAddr: addr,
			RcvTime:    time.Now(),
			ECN:        ecn,
		}
		select {
		case packets <- p:
		case <-s.closed:
			return
		}
	}
}

// A ShardSet runs multiple shards, one per socket, each on its own loop.
// SO_REUSEPORT style sharding is the caller's concern when creating the sockets.
type ShardSet struct {
	shards []*Shard
}

// NewShardSet creates one shard per socket.
func NewShardSet(conns []net.PacketConn, config *Config, newSession SessionConstructor) *ShardSet {
	shards := make([]*Shard, 0, len(conns))
	for _, conn := range conns {
		shards = append(shards, NewShard(conn, config, newSession))
	}
	return &ShardSet{shards: shards}
}

// Shards returns the individual shards.
func (s *ShardSet) Shards() []*Shard { return s.shards }

// Run runs all shards until the context is cancelled or one of them fails,
// then shuts the rest down.
func (s *ShardSet) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, shard := range s.shards {
		g.Go(func() error { return shard.Run(ctx) })
	}
	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
