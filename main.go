package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/nstehr/foundry/agent"
	"github.com/nstehr/foundry/ipc"
	"github.com/nstehr/foundry/rules"
)

const banner = `
┏━╸┏━┓╻ ╻┏┓╻╺┳┓┏━┓╻ ╻
┣╸ ┃ ┃┃ ┃┃┗┫ ┃┃┣┳┛┗┳┛
╹  ┗━┛┗━┛╹ ╹╺┻┛╹┗╸ ╹
factory capture bot`

var (
	doctrinePath string
	borderLimit  int
	dispatch     string
	dispatchSize int
	debug        bool
	board        bool
	quiet        bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "foundry",
		Short: "Turn-based factory capture bot",
		Long: `Reads the factory graph and one game state per turn on stdin and
answers each turn with MOVE orders (or WAIT) on stdout. Logs go to stderr.`,
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVarP(&doctrinePath, "doctrine", "d", "", "Path to YAML doctrine file")
	rootCmd.Flags().IntVar(&borderLimit, "border-limit", 0, "Border radius multiplier (overrides doctrine)")
	rootCmd.Flags().StringVar(&dispatch, "dispatch", "", "Dispatch policy: fixed or halve (overrides doctrine)")
	rootCmd.Flags().IntVar(&dispatchSize, "dispatch-size", 0, "Bots per order for the fixed policy (overrides doctrine)")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.Flags().BoolVar(&board, "board", false, "Dump the board to stderr every turn")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Skip the banner")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	// stdout belongs to the referee.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if !quiet {
		color.New(color.FgCyan, color.Bold).Fprintln(os.Stderr, banner)
	}

	doctrine, err := loadDoctrine(cmd)
	if err != nil {
		return err
	}

	engine, err := rules.NewDoctrineEngine(doctrine)
	if err != nil {
		return fmt.Errorf("build rule engine: %w", err)
	}
	d := engine.Doctrine()
	log.Info().
		Str("doctrine", d.Name).
		Int("borderLimit", d.BorderLimit).
		Str("dispatch", string(d.Dispatch)).
		Int("dispatchSize", d.DispatchSize).
		Strs("rules", engine.RuleNames()).
		Msg("starting foundry")

	conn := ipc.NewConnection(os.Stdin, os.Stdout)
	gs, err := conn.ReadSetup()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read setup")
	}

	a := agent.New(engine)
	if board {
		a.Board = os.Stderr
	}
	if err := conn.ReadLoop(gs, a.HandleTurn); err != nil {
		log.Fatal().Err(err).Int("turn", gs.Turn).Msg("game loop failed")
	}
	return nil
}

// loadDoctrine reads the doctrine file if one was given and applies the
// flags that were set explicitly on top of it.
func loadDoctrine(cmd *cobra.Command) (rules.Doctrine, error) {
	d := rules.DefaultDoctrine()
	if doctrinePath != "" {
		loaded, err := rules.LoadDoctrine(doctrinePath)
		if err != nil {
			return d, err
		}
		d = loaded
		log.Info().Str("path", doctrinePath).Msg("doctrine loaded")
	}

	flags := cmd.Flags()
	if flags.Changed("border-limit") {
		d.BorderLimit = borderLimit
	}
	if flags.Changed("dispatch") {
		p, err := rules.ParseDispatchPolicy(dispatch)
		if err != nil {
			return d, fmt.Errorf("--dispatch: %w", err)
		}
		d.Dispatch = p
	}
	if flags.Changed("dispatch-size") {
		d.DispatchSize = dispatchSize
	}
	d.Validate()
	return d, nil
}
