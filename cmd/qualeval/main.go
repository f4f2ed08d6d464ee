// qualeval evaluates a JSONL stream of frame metrics against a capture
// profile and numeric tier, printing one JSON result per frame. With -db
// it also persists the final session snapshot to sqlite, and with
// -restore it resumes a previously persisted session.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/aperture-field/capture.quality/internal/capture"
	captursqlite "github.com/aperture-field/capture.quality/internal/capture/storage/sqlite"
	"github.com/aperture-field/capture.quality/internal/config"
	"github.com/aperture-field/capture.quality/internal/db"
	"github.com/aperture-field/capture.quality/internal/monitoring"
	"github.com/aperture-field/capture.quality/internal/tier"
	"github.com/aperture-field/capture.quality/internal/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "qualeval: %v\n", err)
		os.Exit(1)
	}
}

// run carries all error paths back to main so the deferred closes fire
// before the process exits. That matters for the database: exiting while
// the WAL is open would leave the checkpoint to the next opener.
func run() error {
	profileName := flag.String("profile", config.ProfileProduction, "Built-in profile name (production, debug, lab)")
	profileFile := flag.String("profile-file", "", "Path to a JSON profile file (overrides -profile)")
	tierName := flag.String("tier", string(tier.Canonical), "Numeric tier (canonical, fast, fixed_point_placeholder)")
	inputPath := flag.String("input", "-", "JSONL frame metrics file, or - for stdin")
	dbPath := flag.String("db", "", "Optional sqlite database for snapshot persistence")
	restoreSession := flag.String("restore", "", "Session ID to restore from -db before evaluating")
	debug := flag.Bool("debug", false, "Enable debug logging")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("qualeval %s (%s, built %s)\n", version.Version, version.GitSHA, version.BuildTime)
		return nil
	}

	monitoring.SetDebug(*debug)

	profile, err := loadProfile(*profileName, *profileFile)
	if err != nil {
		return err
	}

	tc, err := tier.New(tier.Backend(*tierName))
	if err != nil {
		return err
	}

	engine, err := capture.NewEngine(profile, tc)
	if err != nil {
		return err
	}

	var store *captursqlite.SnapshotStore
	if *dbPath != "" {
		database, err := db.OpenDB(*dbPath)
		if err != nil {
			return err
		}
		defer database.Close()
		if err := database.MigrateUp(); err != nil {
			return err
		}
		store = captursqlite.NewSnapshotStore(database.DB)

		if *restoreSession != "" {
			snap, err := store.Load(*restoreSession)
			if err != nil {
				return fmt.Errorf("restore: %w", err)
			}
			if err := engine.RestoreSnapshot(snap); err != nil {
				return fmt.Errorf("restore: %w", err)
			}
			monitoring.Logf("qualeval: restored session %s", snap.SessionID)
		}
	} else if *restoreSession != "" {
		return fmt.Errorf("-restore requires -db")
	}

	input, err := openInput(*inputPath)
	if err != nil {
		return err
	}
	defer input.Close()

	if err := evaluate(engine, input, os.Stdout); err != nil {
		return err
	}

	if store != nil {
		if err := store.Save(engine.Snapshot()); err != nil {
			return fmt.Errorf("save snapshot: %w", err)
		}
		monitoring.Logf("qualeval: saved session %s", engine.SessionID())
	}
	return nil
}

func loadProfile(name, file string) (*config.Profile, error) {
	if file != "" {
		return config.LoadProfileFile(file)
	}
	return config.LoadProfile(name)
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// frameOutput is the per-frame JSON line written to stdout.
type frameOutput struct {
	Frame        int     `json:"frame"`
	PatchID      string  `json:"patch_id"`
	ThetaBucket  int     `json:"theta_bucket"`
	PhiBucket    int     `json:"phi_bucket"`
	ThetaSpanDeg float64 `json:"theta_span_deg"`
	PhiSpanDeg   float64 `json:"phi_span_deg"`
	Composite    float64 `json:"composite"`
	CompositeQ   int64   `json:"composite_q"`
	State        string  `json:"state"`
	Transitioned bool    `json:"transitioned"`
	Reason       string  `json:"reason"`
}

func evaluate(engine *capture.Engine, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	enc := json.NewEncoder(w)

	frame := 0
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		frame++

		var m capture.FrameMetrics
		if err := json.Unmarshal(line, &m); err != nil {
			return fmt.Errorf("frame %d: %w", frame, err)
		}

		res, err := engine.EvaluateFrame(m)
		if err != nil {
			return fmt.Errorf("frame %d: %w", frame, err)
		}

		out := frameOutput{
			Frame:        frame,
			PatchID:      m.PatchID,
			ThetaBucket:  res.ThetaBucket,
			PhiBucket:    res.PhiBucket,
			ThetaSpanDeg: res.Spans.ThetaDegrees,
			PhiSpanDeg:   res.Spans.PhiDegrees,
			Composite:    res.Scores.Composite,
			CompositeQ:   res.Scores.CompositeQ,
			State:        res.Mode.State.String(),
			Transitioned: res.Mode.Transitioned,
			Reason:       string(res.Mode.Reason),
		}
		if err := enc.Encode(out); err != nil {
			return err
		}
	}
	return scanner.Err()
}
