package main

import (
	"context"
	"net"
	"os"
	"time"

	"github.com/gofrs/uuid"
	"github.com/jdbaldry/go-language-server-protocol/jsonrpc2"
	"github.com/jdbaldry/go-language-server-protocol/lsp/protocol"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var version = "dev"

// stdrwc adapts stdin and stdout to the io.ReadWriteCloser the jsonrpc2
// stream wants. The protocol channel is stdio, so logs go to stderr.
type stdrwc struct{}

func (stdrwc) Read(p []byte) (int, error)  { return os.Stdin.Read(p) }
func (stdrwc) Write(p []byte) (int, error) { return os.Stdout.Write(p) }

func (stdrwc) Close() error {
	if err := os.Stdin.Close(); err != nil {
		return err
	}
	return os.Stdout.Close()
}

// net.Conn methods beyond io.ReadWriteCloser; the header stream only uses
// Read, Write and Close, so these are inert.
func (stdrwc) LocalAddr() net.Addr                { return stdioAddr{} }
func (stdrwc) RemoteAddr() net.Addr               { return stdioAddr{} }
func (stdrwc) SetDeadline(time.Time) error        { return nil }
func (stdrwc) SetReadDeadline(time.Time) error    { return nil }
func (stdrwc) SetWriteDeadline(time.Time) error   { return nil }

type stdioAddr struct{}

func (stdioAddr) Network() string { return "stdio" }
func (stdioAddr) String() string  { return "stdio" }

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if id, err := uuid.NewV4(); err == nil {
		logger = logger.With().Str("session_id", id.String()).Logger()
	}
	log.Logger = logger

	server := newServer("compilador-lsp", version)

	ctx := context.Background()
	conn := jsonrpc2.NewConn(jsonrpc2.NewHeaderStream(stdrwc{}))
	server.client = protocol.ClientDispatcher(conn)
	conn.Go(ctx, server.handler)

	log.Info().Str("version", version).Msg("language server started")
	<-conn.Done()
	if err := conn.Err(); err != nil {
		log.Error().Err(err).Msg("connection closed with error")
	}
}
