package platform

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aretw0/quipnote/pkg/adapters/fs"
	"github.com/aretw0/quipnote/pkg/adapters/memory"
	"github.com/aretw0/quipnote/pkg/adapters/redis"
	"github.com/aretw0/quipnote/pkg/codec"
	"github.com/aretw0/quipnote/pkg/core"
	"github.com/aretw0/quipnote/pkg/joke"
	"github.com/aretw0/quipnote/pkg/notes"
	"github.com/aretw0/quipnote/pkg/screen"
)

// New wires a screen. The dataDir argument is adapter specific: the slot
// directory for "fs", ignored by "memory" and "redis".
// The notes are not loaded yet; call Start on the result.
func New(dataDir string, opts ...Option) (*screen.Screen, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	c, err := codec.ForName(o.codec)
	if err != nil {
		return nil, err
	}

	slots, err := openSlots(dataDir, c, o)
	if err != nil {
		return nil, err
	}

	httpClient := o.httpClient
	if o.timeout > 0 {
		if httpClient == nil {
			httpClient = &http.Client{}
		} else {
			clone := *httpClient
			httpClient = &clone
		}
		httpClient.Timeout = o.timeout
	}

	fetcher := joke.NewFetcher(joke.NewClient(o.jokeURL, httpClient, o.logger), o.logger)
	store := notes.NewStore(slots, c, o.slotKey, o.logger)

	o.logger.Debug("screen configured",
		"adapter", o.adapter,
		"codec", c.Name(),
		"slot", o.slotKey,
	)
	return screen.New(fetcher, store, slots, o.logger), nil
}

func openSlots(dataDir string, c core.Codec, o *options) (core.SlotStore, error) {
	if o.slots != nil {
		return o.slots, nil
	}

	switch o.adapter {
	case "", "fs":
		if dataDir == "" {
			return nil, fmt.Errorf("fs adapter requires a data directory")
		}
		st := fs.NewStore(fs.Config{
			Path:      dataDir,
			MustExist: o.mustExist,
			ReadOnly:  o.readOnly,
			Ext:       c.Ext(),
			Logger:    o.logger,
		})
		if err := st.Initialize(context.Background()); err != nil {
			return nil, err
		}
		return st, nil
	case "memory":
		return memory.NewStore(), nil
	case "redis":
		if o.redisAddr == "" {
			return nil, fmt.Errorf("redis adapter requires an address")
		}
		return redis.NewStore(redis.Config{Addr: o.redisAddr, DB: o.redisDB}), nil
	default:
		return nil, fmt.Errorf("unknown adapter %q", o.adapter)
	}
}
