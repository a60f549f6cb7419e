package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mahjong/internal/applog"
	"mahjong/internal/meld"
	"mahjong/internal/montecarlo"
	"mahjong/internal/score"
	"mahjong/internal/shanten"
	"mahjong/internal/tiles"
	"mahjong/internal/yaku"

	"github.com/cheggaaa/pb/v3"
)

var rootCmd = &cobra.Command{
	Use:   "mahjongctl",
	Short: "mahjongctl is a command-line harness over the hand-shape engine",
}

var (
	declaredFlag []string
	visibleFlag  string
)

var shantenCmd = &cobra.Command{
	Use:   "shanten [hand]",
	Short: "report shanten distance and ukiere for a hand",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		free, err := tiles.ParseMultiset(args[0])
		if err != nil {
			return err
		}
		declared, err := parseDeclaredGroups(declaredFlag)
		if err != nil {
			return err
		}

		value, err := shanten.Shanten(free, declared)
		if err != nil {
			return err
		}
		fmt.Printf("shanten: %d\n", value)

		if value <= -1 {
			return nil
		}
		visible, _ := tiles.ParseMultiset(visibleFlag)
		uk, err := shanten.Ukiere(free, declared, visible)
		if err != nil {
			return err
		}
		for _, u := range uk {
			fmt.Printf("  ukiere %s (%d live)\n", u.ID, u.LiveCount)
		}
		return nil
	},
}

var (
	winningTileFlag string
	closedFlag      bool
	riichiFlag      string
	roundWindFlag   string
	seatWindFlag    string
	honbaFlag       int
	sticksFlag      int
	doraFlag        []string
	sourceFlag      string
)

var scoreCmd = &cobra.Command{
	Use:   "score [hand]",
	Short: "score a completed hand",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		free, err := tiles.ParseMultiset(args[0])
		if err != nil {
			return err
		}
		declared, err := parseDeclaredGroups(declaredFlag)
		if err != nil {
			return err
		}
		winningTile, _, err := tiles.Parse(winningTileFlag)
		if err != nil {
			return err
		}
		if err := free.Add(winningTile, false); err != nil {
			return err
		}
		dora := make([]tiles.ID, 0, len(doraFlag))
		for _, d := range doraFlag {
			id, _, err := tiles.Parse(d)
			if err != nil {
				return err
			}
			dora = append(dora, id)
		}

		hand := yaku.HandInfo{
			Closed: closedFlag, Riichi: parseRiichiFlag(riichiFlag),
			RoundWind: parseWindFlag(roundWindFlag), SeatWind: parseWindFlag(seatWindFlag),
			Honba: honbaFlag, RiichiSticks: sticksFlag, Dora: dora,
		}
		win := yaku.WinInfo{Source: parseSourceFlag(sourceFlag)}

		result, err := score.Score(score.Request{Free: free, Declared: declared, WinningTile: winningTile, Hand: hand, Win: win})
		if err != nil {
			return err
		}

		fmt.Printf("han: %d, fu: %d, points: %d\n", result.Han, result.Fu, result.Points.Total)
		for _, y := range result.Yaku {
			fmt.Printf("  %s (%d han)\n", y.Name, y.Han)
		}
		for _, y := range result.Yakuman {
			fmt.Printf("  %s (x%d)\n", y.Name, y.Multiplier)
		}
		return nil
	},
}

var (
	trialsFlag   int
	maxDrawsFlag int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [hand]",
	Short: "Monte-Carlo draws-to-tenpai simulation for a 1-shanten hand",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		free, err := tiles.ParseMultiset(args[0])
		if err != nil {
			return err
		}
		declared, err := parseDeclaredGroups(declaredFlag)
		if err != nil {
			return err
		}
		visible, _ := tiles.ParseMultiset(visibleFlag)

		bar := pb.StartNew(trialsFlag)
		defer bar.Finish()

		result, err := montecarlo.Run(montecarlo.Request{
			StartingHand: free, Declared: declared, Visible: visible,
			Trials: trialsFlag, MaxDraws: maxDrawsFlag,
		})
		bar.SetCurrent(int64(trialsFlag))
		if err != nil {
			return err
		}

		fmt.Printf("trials: %d, successes: %d\n", result.Trials, result.Successes)
		fmt.Printf("mean draws to tenpai: %.2f (variance %.2f)\n", result.MeanDrawsToTenpai, result.VarianceDrawsToTenpai)
		fmt.Printf("mean ukiere at tenpai: %.2f\n", result.MeanUkiereAtTenpai)
		return nil
	},
}

func parseDeclaredGroups(groups []string) ([]meld.Meld, error) {
	out := make([]meld.Meld, 0, len(groups))
	for _, g := range groups {
		c, err := tiles.ParseMultiset(g)
		if err != nil {
			return nil, err
		}
		m, err := meld.New(c.AllIDs(), false)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func parseWindFlag(s string) tiles.Wind {
	switch s {
	case "south":
		return tiles.WindSouth
	case "west":
		return tiles.WindWest
	case "north":
		return tiles.WindNorth
	default:
		return tiles.WindEast
	}
}

func parseRiichiFlag(s string) yaku.RiichiState {
	switch s {
	case "declared":
		return yaku.RiichiDeclared
	case "double":
		return yaku.RiichiDouble
	default:
		return yaku.RiichiNone
	}
}

func parseSourceFlag(s string) yaku.SourceKind {
	switch s {
	case "selfDraw":
		return yaku.SourceSelfDraw
	case "afterKan":
		return yaku.SourceAfterKan
	case "robbingKan":
		return yaku.SourceRobbingKan
	default:
		return yaku.SourceDiscard
	}
}

func init() {
	shantenCmd.Flags().StringArrayVar(&declaredFlag, "declared", nil, "declared meld, repeatable (e.g. --declared 333z)")
	shantenCmd.Flags().StringVar(&visibleFlag, "visible", "", "tiles visible to the caller outside the hand")

	scoreCmd.Flags().StringArrayVar(&declaredFlag, "declared", nil, "declared meld, repeatable")
	scoreCmd.Flags().StringVar(&winningTileFlag, "winning-tile", "", "the winning tile")
	scoreCmd.Flags().BoolVar(&closedFlag, "closed", true, "hand is closed (menzen)")
	scoreCmd.Flags().StringVar(&riichiFlag, "riichi", "", "riichi state: declared, double, or empty for none")
	scoreCmd.Flags().StringVar(&roundWindFlag, "round-wind", "east", "round wind: east, south, west, north")
	scoreCmd.Flags().StringVar(&seatWindFlag, "seat-wind", "east", "seat wind: east, south, west, north")
	scoreCmd.Flags().IntVar(&honbaFlag, "honba", 0, "honba count")
	scoreCmd.Flags().IntVar(&sticksFlag, "riichi-sticks", 0, "riichi sticks on the table")
	scoreCmd.Flags().StringArrayVar(&doraFlag, "dora", nil, "dora tile, repeatable")
	scoreCmd.Flags().StringVar(&sourceFlag, "source", "discard", "winning tile source: discard, selfDraw, afterKan, robbingKan")
	scoreCmd.MarkFlagRequired("winning-tile")

	simulateCmd.Flags().StringArrayVar(&declaredFlag, "declared", nil, "declared meld, repeatable")
	simulateCmd.Flags().StringVar(&visibleFlag, "visible", "", "discards, dora indicators and opponents' melds")
	simulateCmd.Flags().IntVar(&trialsFlag, "trials", 10000, "number of simulated trials")
	simulateCmd.Flags().IntVar(&maxDrawsFlag, "max-draws", 18, "maximum draws allowed per trial")

	rootCmd.AddCommand(shantenCmd, scoreCmd, simulateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		applog.Error("mahjongctl: %v", err)
		os.Exit(1)
	}
}
