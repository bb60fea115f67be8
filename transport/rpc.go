package transport

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/encoding"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/anytype-sdk/anytype-go/errs"
)

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

// RPCChannel is the long-lived HTTP/2 connection used for streaming
// operations (chat subscriptions, file upload/download) where a
// request/response REST call would either block far too long or
// require polling. Every call attaches the current bearer token as
// "token" RPC metadata, read fresh from the keystore each time so a
// rotated token takes effect on the next call without reconnecting.
type RPCChannel struct {
	conn *grpc.ClientConn
	ks   KeyStore
}

// NewRPCChannel dials cfg.RPCEndpoint. The connection is established
// lazily by grpc-go itself (grpc.NewClient does not block), so this
// never fails merely because the server isn't listening yet; that
// surfaces on the first call instead.
func NewRPCChannel(cfg Config, ks KeyStore) (*RPCChannel, error) {
	target := strings.TrimPrefix(strings.TrimPrefix(cfg.RPCEndpoint, "http://"), "https://")

	conn, err := grpc.NewClient(target,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(jsonCodec{}.Name())),
	)
	if err != nil {
		return nil, errs.Wrap(errs.KindRPC, "dial rpc endpoint", err)
	}
	return &RPCChannel{conn: conn, ks: ks}, nil
}

// Close releases the underlying connection.
func (c *RPCChannel) Close() error {
	return c.conn.Close()
}

// authContext attaches the current bearer token as "token" metadata,
// the RPC-side equivalent of the REST channel's Authorization header.
func (c *RPCChannel) authContext(ctx context.Context) (context.Context, error) {
	token, err := c.ks.Load(ctx)
	if err != nil {
		return nil, err
	}
	return metadata.AppendToOutgoingContext(ctx, "token", token), nil
}

// Invoke performs a single unary RPC call against method (the fully
// qualified "/package.Service/Method" name from the server's schema).
func (c *RPCChannel) Invoke(ctx context.Context, method string, req, reply any) error {
	ctx, err := c.authContext(ctx)
	if err != nil {
		return err
	}
	if err := c.conn.Invoke(ctx, method, req, reply); err != nil {
		return wrapRPCErr(err)
	}
	return nil
}

// NewServerStream opens a server-streaming call against method,
// sending req as the single client message and returning the stream
// the caller then repeatedly calls RecvMsg on. Used for file downloads.
func (c *RPCChannel) NewServerStream(ctx context.Context, method string, req any) (grpc.ClientStream, error) {
	ctx, err := c.authContext(ctx)
	if err != nil {
		return nil, err
	}
	desc := &grpc.StreamDesc{StreamName: streamName(method), ServerStreams: true}
	stream, err := c.conn.NewStream(ctx, desc, method)
	if err != nil {
		return nil, wrapRPCErr(err)
	}
	if err := stream.SendMsg(req); err != nil {
		return nil, wrapRPCErr(err)
	}
	if err := stream.CloseSend(); err != nil {
		return nil, wrapRPCErr(err)
	}
	return stream, nil
}

// NewClientStream opens a client-streaming call against method, whose
// caller repeatedly calls SendMsg, then CloseSend and a final RecvMsg
// for the reply. Used for chunked file upload.
func (c *RPCChannel) NewClientStream(ctx context.Context, method string) (grpc.ClientStream, error) {
	ctx, err := c.authContext(ctx)
	if err != nil {
		return nil, err
	}
	desc := &grpc.StreamDesc{StreamName: streamName(method), ClientStreams: true}
	stream, err := c.conn.NewStream(ctx, desc, method)
	if err != nil {
		return nil, wrapRPCErr(err)
	}
	return stream, nil
}

// NewBiStream opens a bidirectional-streaming call against method, used
// by the chat subscription engine to multiplex subscribe frames and
// inbound events over one long-lived stream.
func (c *RPCChannel) NewBiStream(ctx context.Context, method string) (grpc.ClientStream, error) {
	ctx, err := c.authContext(ctx)
	if err != nil {
		return nil, err
	}
	desc := &grpc.StreamDesc{StreamName: streamName(method), ClientStreams: true, ServerStreams: true}
	stream, err := c.conn.NewStream(ctx, desc, method)
	if err != nil {
		return nil, wrapRPCErr(err)
	}
	return stream, nil
}

func streamName(method string) string {
	i := strings.LastIndex(method, "/")
	if i < 0 {
		return method
	}
	return method[i+1:]
}

func wrapRPCErr(err error) error {
	if st, ok := status.FromError(err); ok {
		if st.Code() == codes.NotFound {
			return errs.NotFound("", "")
		}
		return errs.Wrap(errs.KindRPC, st.Message(), err)
	}
	return errs.Wrap(errs.KindRPC, "rpc call failed", err)
}
