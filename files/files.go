// Package files implements the streamed upload/download surface (C8)
// over transport.RPCChannel's client- and server-streaming RPCs. Frames
// are bounded-size chunks of a single file; the server derives mime type
// and enforces size limits, so this package validates only that the
// source is non-empty.
package files

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/anytype-sdk/anytype-go/errs"
	"github.com/anytype-sdk/anytype-go/internal/logging"
	"github.com/anytype-sdk/anytype-go/model"
	"github.com/anytype-sdk/anytype-go/transport"
)

// chunkSize bounds a single frame of an upload stream.
const chunkSize = 64 * 1024

const (
	uploadMethod   = "/anytype.Files/Upload"
	downloadMethod = "/anytype.Files/Download"
)

// uploadFrame is the wire shape of a single client-streaming upload
// message. The first frame of a call carries Name/FileType; every frame
// carries a chunk of Data. Closing the send side of the stream ends the
// logical file; no empty trailing frame is sent.
type uploadFrame struct {
	Name     string         `json:"name,omitempty"`
	FileType model.FileType `json:"file_type,omitempty"`
	Data     []byte         `json:"data,omitempty"`
}

// downloadFrame is the wire shape of a single server-streaming download
// message. The first frame carries the server's declared Name/Mime/Size;
// every frame (including the first) may carry a chunk of Data.
type downloadFrame struct {
	Name string `json:"name,omitempty"`
	Mime string `json:"mime,omitempty"`
	Size int64  `json:"size,omitempty"`
	Data []byte `json:"data,omitempty"`
}

// Progress reports cumulative bytes transferred, delivered on a channel
// the caller may optionally attach via UploadBuilder.Progress /
// DownloadBuilder.Progress. Total is 0 when unknown (server-driven
// downloads report it once the first frame arrives; uploads from bytes
// or a stat-able file report it from the start).
type Progress struct {
	Done  int64
	Total int64
}

// source abstracts FromPath and FromBytes behind one reader.
type source struct {
	name string
	size int64
	r    io.Reader
	closer io.Closer
}

// UploadBuilder accumulates an upload's source and metadata before
// issuing the client-streaming RPC.
type UploadBuilder struct {
	rc       *transport.RPCChannel
	space    string
	src      *source
	fileType model.FileType
	progress chan<- Progress
}

// Upload starts an upload builder into space.
func Upload(rc *transport.RPCChannel, space string) *UploadBuilder {
	return &UploadBuilder{rc: rc, space: space}
}

// FromPath reads the file at p, using its base name as the declared
// name.
func (b *UploadBuilder) FromPath(p string) *UploadBuilder {
	f, err := os.Open(p)
	if err != nil {
		b.src = &source{name: filepath.Base(p), r: errReader{err: errs.Wrap(errs.KindIO, "open upload source", err)}}
		return b
	}
	size := int64(0)
	if fi, serr := f.Stat(); serr == nil {
		size = fi.Size()
	}
	b.src = &source{name: filepath.Base(p), size: size, r: f, closer: f}
	return b
}

// FromBytes uses data directly, declaring name as the server-facing
// filename.
func (b *UploadBuilder) FromBytes(name string, data []byte) *UploadBuilder {
	b.src = &source{name: name, size: int64(len(data)), r: bytes.NewReader(data)}
	return b
}

// FileType sets the declared file type; the server still performs its
// own mime inference.
func (b *UploadBuilder) FileType(t model.FileType) *UploadBuilder {
	b.fileType = t
	return b
}

// Progress attaches a channel that receives cumulative byte counts as
// the upload proceeds. The caller must drain it; Upload sends best-effort
// (a full channel is skipped rather than blocking the transfer).
func (b *UploadBuilder) Progress(ch chan<- Progress) *UploadBuilder {
	b.progress = ch
	return b
}

type errReader struct{ err error }

func (e errReader) Read([]byte) (int, error) { return 0, e.err }

// Upload streams the source in bounded frames over a client-streaming
// RPC and returns the created FileObject.
func (b *UploadBuilder) Upload(ctx context.Context) (model.FileObject, error) {
	if b.src == nil {
		return model.FileObject{}, errs.Validation("upload source is empty")
	}
	if b.src.closer != nil {
		defer b.src.closer.Close()
	}

	stream, err := b.rc.NewClientStream(ctx, uploadMethod)
	if err != nil {
		return model.FileObject{}, err
	}

	first := true
	var sent int64
	buf := make([]byte, chunkSize)
	for {
		n, rerr := b.src.r.Read(buf)
		if n > 0 {
			frame := uploadFrame{Data: append([]byte(nil), buf[:n]...)}
			if first {
				frame.Name = b.src.name
				frame.FileType = b.fileType
				first = false
			}
			if serr := stream.SendMsg(frame); serr != nil {
				return model.FileObject{}, errs.Wrap(errs.KindRPC, "send upload frame", serr)
			}
			sent += int64(n)
			if b.progress != nil {
				select {
				case b.progress <- Progress{Done: sent, Total: b.src.size}:
				default:
				}
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return model.FileObject{}, errs.Wrap(errs.KindIO, "read upload source", rerr)
		}
	}
	if first {
		return model.FileObject{}, errs.Validation("upload source is empty")
	}

	if err := stream.CloseSend(); err != nil {
		return model.FileObject{}, errs.Wrap(errs.KindRPC, "close upload stream", err)
	}
	var reply model.FileObject
	if err := stream.RecvMsg(&reply); err != nil {
		return model.FileObject{}, errs.Wrap(errs.KindRPC, "recv upload reply", err)
	}

	logging.Log.WithFields(map[string]any{
		"name": b.src.name, "size": humanize.Bytes(uint64(sent)),
	}).Debug("files: upload complete")
	return reply, nil
}

// DownloadBuilder accumulates a download's destination before issuing
// the server-streaming RPC.
type DownloadBuilder struct {
	rc       *transport.RPCChannel
	fileID   string
	dir      string
	toBytes  bool
	progress chan<- Progress
}

// Download starts a download builder for fileID.
func Download(rc *transport.RPCChannel, fileID string) *DownloadBuilder {
	return &DownloadBuilder{rc: rc, fileID: fileID}
}

// ToPath writes the downloaded content into dir, under a filename
// derived from the server's declared name (falling back to the file id
// if the server declares none).
func (b *DownloadBuilder) ToPath(dir string) *DownloadBuilder {
	b.dir = dir
	b.toBytes = false
	return b
}

// ToBytes accumulates the downloaded content in memory instead of
// writing to disk.
func (b *DownloadBuilder) ToBytes() *DownloadBuilder {
	b.toBytes = true
	return b
}

// Progress attaches a channel that receives cumulative byte counts as
// the download proceeds.
func (b *DownloadBuilder) Progress(ch chan<- Progress) *DownloadBuilder {
	b.progress = ch
	return b
}

// DownloadResult is the outcome of a completed download.
type DownloadResult struct {
	Name string
	Mime string
	Path string // set only when downloaded ToPath
	Data []byte // set only when downloaded ToBytes
}

// Download opens the server-streaming RPC and drains it into the
// configured destination.
func (b *DownloadBuilder) Download(ctx context.Context) (DownloadResult, error) {
	stream, err := b.rc.NewServerStream(ctx, downloadMethod, map[string]string{"file_id": b.fileID})
	if err != nil {
		return DownloadResult{}, err
	}

	var name, mime string
	var total, done int64
	var buf bytes.Buffer
	var out *os.File
	defer func() {
		if out != nil {
			out.Close()
		}
	}()

	for {
		var frame downloadFrame
		rerr := stream.RecvMsg(&frame)
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return DownloadResult{}, errs.Wrap(errs.KindRPC, "recv download frame", rerr)
		}
		if frame.Name != "" {
			name = frame.Name
		}
		if frame.Mime != "" {
			mime = frame.Mime
		}
		if frame.Size > 0 {
			total = frame.Size
		}
		if len(frame.Data) == 0 {
			continue
		}
		if !b.toBytes && out == nil {
			if name == "" {
				name = b.fileID
			}
			out, err = os.Create(filepath.Join(b.dir, name))
			if err != nil {
				return DownloadResult{}, errs.Wrap(errs.KindIO, "create download destination", err)
			}
		}
		if b.toBytes {
			buf.Write(frame.Data)
		} else if _, werr := out.Write(frame.Data); werr != nil {
			return DownloadResult{}, errs.Wrap(errs.KindIO, "write download destination", werr)
		}
		done += int64(len(frame.Data))
		if b.progress != nil {
			select {
			case b.progress <- Progress{Done: done, Total: total}:
			default:
			}
		}
	}

	if name == "" {
		name = b.fileID
	}
	result := DownloadResult{Name: name, Mime: mime}
	if b.toBytes {
		result.Data = buf.Bytes()
	} else {
		result.Path = filepath.Join(b.dir, name)
	}
	return result, nil
}
