// Command translit converts simplified Romanized Arabic into academic
// transliteration and reports diacritic statistics.
//
//	translit convert Bismillahir Rahmanir Raheem
//	echo "Read the Quran" | translit convert
//	translit stats "Ṣalāh"
//	translit ayahs --out converted/ surah-001.json surah-112.json
//	translit tables
//
// Settings come from a YAML file (--config or TRANSLIT_CONFIG) and
// TRANSLIT_* environment variables; see internal/config.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(&app{}).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "translit: %v\n", err)
		stop()
		os.Exit(1)
	}
}
