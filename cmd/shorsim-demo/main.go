package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/big"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/qryptic/shorsim/pkg/shorsim"
)

// ResultOutput is the JSON shape emitted per modulus
type ResultOutput struct {
	N            string          `json:"n"`
	Status       string          `json:"status"`
	P            string          `json:"p,omitempty"`
	Q            string          `json:"q,omitempty"`
	Base         string          `json:"base,omitempty"`
	Period       string          `json:"period,omitempty"`
	AttemptsUsed int             `json:"attempts_used"`
	Reason       string          `json:"reason,omitempty"`
	ElapsedMs    int64           `json:"elapsed_ms"`
	Attempts     []AttemptOutput `json:"attempts,omitempty"`
}

// AttemptOutput is the JSON shape of one attempt record
type AttemptOutput struct {
	Attempt     int    `json:"attempt"`
	Base        string `json:"base"`
	GCDShortcut bool   `json:"gcd_shortcut,omitempty"`
	Phase       string `json:"phase"`
	Measurement int    `json:"measurement"`
	Period      string `json:"period,omitempty"`
	Reason      string `json:"reason,omitempty"`
}

func main() {
	var (
		moduli   = flag.String("n", "15,21,35,77", "comma-separated moduli to factor")
		attempts = flag.Int("attempts", 10, "maximum period-finding attempts per modulus")
		seed     = flag.Uint64("seed", uint64(time.Now().UnixNano()), "transcript seed (defaults to the current time)")
		counting = flag.Int("counting-qubits", 0, "counting-register width override (0 = automatic)")
		asJSON   = flag.Bool("json", false, "emit results as JSON on stdout")
		verbose  = flag.Bool("v", false, "log every attempt, not just outcomes")
	)
	flag.Parse()

	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	config := shorsim.DefaultConfig().
		WithMaxAttempts(*attempts).
		WithSeed(*seed).
		WithCountingQubits(*counting).
		WithLogger(log)

	factorizer, err := shorsim.NewFactorizer(config)
	if err != nil {
		fatal(fmt.Sprintf("Failed to create factorizer: %v", err))
	}

	for _, field := range strings.Split(*moduli, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, ok := new(big.Int).SetString(field, 10)
		if !ok {
			fatal(fmt.Sprintf("Invalid modulus %q", field))
		}

		start := time.Now()
		result, err := factorizer.Factorize(n)
		if err != nil {
			fatal(fmt.Sprintf("Factorization of %s failed: %v", n, err))
		}
		elapsed := time.Since(start)

		if *asJSON {
			emitJSON(n, result, elapsed)
		} else {
			emitText(n, result, elapsed)
		}
	}
}

func emitText(n *big.Int, result *shorsim.FactorizationResult, elapsed time.Duration) {
	if result.Status == shorsim.StatusSuccess {
		fmt.Printf("%s = %s * %s", n, result.P, result.Q)
		if result.Period != nil {
			fmt.Printf("  (base %s, period %s, %d attempts, %s)",
				result.Base, result.Period, result.AttemptsUsed, elapsed.Round(time.Millisecond))
		} else if result.AttemptsUsed > 0 {
			fmt.Printf("  (base %s, gcd shortcut, %d attempts, %s)",
				result.Base, result.AttemptsUsed, elapsed.Round(time.Millisecond))
		} else {
			fmt.Printf("  (%s, %s)", result.Reason, elapsed.Round(time.Millisecond))
		}
		fmt.Println()
		return
	}
	fmt.Printf("%s: no factors found after %d attempts: %s\n", n, result.AttemptsUsed, result.Reason)
}

func emitJSON(n *big.Int, result *shorsim.FactorizationResult, elapsed time.Duration) {
	out := ResultOutput{
		N:            n.String(),
		Status:       result.Status.String(),
		AttemptsUsed: result.AttemptsUsed,
		Reason:       result.Reason,
		ElapsedMs:    elapsed.Milliseconds(),
	}
	if result.P != nil {
		out.P = result.P.String()
	}
	if result.Q != nil {
		out.Q = result.Q.String()
	}
	if result.Base != nil {
		out.Base = result.Base.String()
	}
	if result.Period != nil {
		out.Period = result.Period.String()
	}
	for _, rec := range result.Attempts {
		a := AttemptOutput{
			Attempt:     rec.Attempt,
			Base:        rec.Base.String(),
			GCDShortcut: rec.GCDShortcut,
			Phase:       rec.Phase.String(),
			Measurement: rec.Measurement,
			Reason:      rec.Reason,
		}
		if rec.Period != nil {
			a.Period = rec.Period.String()
		}
		out.Attempts = append(out.Attempts, a)
	}

	enc := json.NewEncoder(os.Stdout)
	if err := enc.Encode(out); err != nil {
		fatal(fmt.Sprintf("Failed to encode result: %v", err))
	}
}

func fatal(msg string) {
	fmt.Fprintln(os.Stderr, "ERROR: "+msg)
	os.Exit(1)
}
