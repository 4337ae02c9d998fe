package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/danielpatrickdp/taste-trainer/go-trainer/internal/catalog"
	"github.com/danielpatrickdp/taste-trainer/go-trainer/internal/genome"
	"github.com/danielpatrickdp/taste-trainer/go-trainer/internal/loop"
	"github.com/danielpatrickdp/taste-trainer/go-trainer/internal/pool"
	"github.com/danielpatrickdp/taste-trainer/go-trainer/internal/sampler"
	"github.com/danielpatrickdp/taste-trainer/go-trainer/internal/signallog"
	"github.com/danielpatrickdp/taste-trainer/go-trainer/internal/signals"
)

// #region local-engine

// localEngine serves the loop's engine port from the local signal log when
// no remote engine is configured. It never has a genome, so metrics reflect
// cadence only.
type localEngine struct {
	store *signallog.Store
}

func (e *localEngine) Genome(_ context.Context, _ string) (genome.Snapshot, error) {
	return genome.Snapshot{}, nil
}

func (e *localEngine) Signals(ctx context.Context, profileID string, limit int) ([]signals.Signal, error) {
	return e.store.Recent(ctx, profileID, limit)
}

// #endregion local-engine

// #region main

func main() {
	profile := envOr("TASTE_PROFILE", "default")
	engineAddr := os.Getenv("TASTE_ENGINE") // empty = local mode
	dbPath := envOr("TASTE_DB", "taste_signals.db")
	catalogPath := os.Getenv("TASTE_CATALOG")

	entries := catalog.Default()
	if catalogPath != "" {
		loaded, err := catalog.LoadFile(catalogPath)
		if err != nil {
			log.Fatalf("failed to load catalog: %v", err)
		}
		entries = loaded
	}

	var (
		engine  loop.Engine
		emitter signals.Emitter
		remote  *genome.Client
	)
	if engineAddr != "" {
		remote = genome.NewClient(engineAddr)
		remote.FolioID = os.Getenv("TASTE_FOLIO")
		remote.ProjectID = os.Getenv("TASTE_PROJECT")
		engine = remote
		emitter = remote
	} else {
		store, err := signallog.NewStore(dbPath)
		if err != nil {
			log.Fatalf("failed to open signal log: %v", err)
		}
		defer store.Close()
		engine = &localEngine{store: store}
		emitter = store
	}

	builder := pool.NewBuilder(entries, pool.DefaultBuilderConfig())
	smp := sampler.NewSampler(rand.New(rand.NewSource(time.Now().UnixNano())), sampler.DefaultConfig())
	recorder := signals.NewRecorder(emitter, nil)
	ctl := loop.NewController(engine, recorder, smp, builder, loop.DefaultConfig(profile))

	ctx := context.Background()
	ctl.Start(ctx)

	fmt.Println("Taste Trainer ready.")
	if engineAddr != "" {
		fmt.Printf("  Profile: %s | Engine: %s\n", profile, engineAddr)
	} else {
		fmt.Printf("  Profile: %s | Local log: %s\n", profile, dbPath)
	}
	fmt.Println("Commands: <best> <worst> (slot numbers 1-4), s(kip), metrics, stats, recompute, profile <id>, quit")

	printCard(ctl)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}
		handle(ctx, ctl, remote, line)
	}
}

// #endregion main

// #region handlers

func handle(ctx context.Context, ctl *loop.Controller, remote *genome.Client, line string) {
	fields := strings.Fields(line)
	switch fields[0] {
	case "s", "skip":
		if err := ctl.Skip(ctx); err != nil {
			fmt.Printf("skip failed: %v\n", err)
			return
		}
		printCard(ctl)

	case "metrics":
		printMetrics(ctl)

	case "profile":
		if len(fields) != 2 {
			fmt.Println("usage: profile <id>")
			return
		}
		ctl.SwitchProfile(ctx, fields[1])
		fmt.Printf("switched to profile %s\n", fields[1])
		printCard(ctl)

	case "stats":
		printStats(ctx, ctl, remote)

	case "recompute":
		if remote == nil {
			fmt.Println("recompute requires a remote engine")
			return
		}
		if err := remote.Recompute(ctx, ctl.ProfileID()); err != nil {
			fmt.Printf("recompute failed: %v\n", err)
			return
		}
		fmt.Println("recompute triggered")

	default:
		resolve(ctx, ctl, fields)
	}
}

func resolve(ctx context.Context, ctl *loop.Controller, fields []string) {
	card, ok := ctl.CurrentCard()
	if !ok {
		fmt.Println("no card available right now")
		return
	}
	if len(fields) != 2 {
		fmt.Println("pick best and worst slots, e.g. '2 4'")
		return
	}
	best, okB := slot(fields[0], len(card.Options))
	worst, okW := slot(fields[1], len(card.Options))
	if !okB || !okW || best == worst {
		fmt.Println("slots must be distinct numbers between 1 and 4")
		return
	}
	if err := ctl.Resolve(ctx, card.Options[best].ID, card.Options[worst].ID); err != nil {
		fmt.Printf("submit failed, card unchanged: %v\n", err)
		return
	}
	printMetrics(ctl)
	printCard(ctl)
}

func slot(s string, n int) (int, bool) {
	if len(s) != 1 || s[0] < '1' || int(s[0]-'0') > n {
		return 0, false
	}
	return int(s[0] - '1'), true
}

// #endregion handlers

// #region output

func printCard(ctl *loop.Controller) {
	card, ok := ctl.CurrentCard()
	if !ok {
		fmt.Println("\nNo more cards available right now.")
		return
	}
	fmt.Println("\nWhich lands best for you, and which least?")
	for i, o := range card.Options {
		fmt.Printf("  %d. %s\n", i+1, o.Prompt)
	}
}

func printMetrics(ctl *loop.Controller) {
	m := ctl.Metrics(time.Now())
	snap := ctl.Snapshot()
	if d := snap.PrimaryDesignation(); d != "" {
		fmt.Printf("primary=%s confidence=%.2f | ", d, snap.PrimaryConfidence())
	}
	fmt.Printf("velocity=%.1f/5 trust=%d/100 (on-brand %d, off-brand %d, %d recent)\n",
		m.VelocityScore, m.TrustScore, m.OnBrand, m.OffBrand, m.Recent)
}

func printStats(ctx context.Context, ctl *loop.Controller, remote *genome.Client) {
	if remote == nil {
		fmt.Println("stats require a remote engine")
		return
	}
	g, err := remote.Gamification(ctx, ctl.ProfileID())
	if err != nil {
		fmt.Printf("stats unavailable: %v\n", err)
		return
	}
	fmt.Printf("tier=%s xp=%d signals=%d achievements=%d/%d\n",
		g.Tier, g.XP, g.SignalCount, len(g.Achievements), len(g.AllAchievements))

	primary := ctl.Snapshot().PrimaryDesignation()
	if primary == "" {
		return
	}
	cat, err := remote.ArchetypeCatalog(ctx)
	if err != nil {
		fmt.Printf("archetype catalog unavailable: %v\n", err)
		return
	}
	if info, ok := cat.Archetypes[primary]; ok {
		fmt.Printf("%s %q: %s\n", primary, info.Title, info.Essence)
	}
}

// #endregion output

// #region env

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion env
