package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aglyzov/go-radix/radix"
)

type Page struct {
	Addr uint32
}

func main() {
	var (
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		keys   = make([]uint32, 0, 4096)
	)

	for i := uint32(0); i < 4096; i++ {
		keys = append(keys, i*2654435761) // spread over the whole key space
	}

	newPage := func(addr uint32) (*Page, error) {
		return &Page{Addr: addr}, nil
	}

	for _, mode := range radix.Modes {
		tree, err := radix.New[uint32, Page](mode, 32, 8, radix.WithLogger[Page](logger))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if err := radix.FillParallel(context.Background(), tree, keys, newPage, 8); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		page, ok := tree.Find(keys[42])
		fmt.Println(mode, tree.Shape(), page.Addr == keys[42], ok)
		fmt.Println(mode, tree.Stats())

		if st, ok := tree.(*radix.SubtreeLocked[uint32, Page]); ok {
			fmt.Println(mode, "deleted", st.Delete())
		}
	}
}
