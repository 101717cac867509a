package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-wordle-engine/api"
	"github.com/gcbaptista/go-wordle-engine/config"
	"github.com/gcbaptista/go-wordle-engine/internal/engine"
	"github.com/gcbaptista/go-wordle-engine/services"
	"github.com/gcbaptista/go-wordle-engine/words"
)

func printUsage() {
	fmt.Printf("Wordle solver engine\n\n")
	fmt.Printf("Usage: %s <mode> [options]\n\n", os.Args[0])
	fmt.Printf("Modes:\n")
	fmt.Printf("  solve <word>   Solve for a known answer and print the guess sequence\n")
	fmt.Printf("  start          Compute the best opening word across the vocabulary\n")
	fmt.Printf("  generate       Generate a decision tree (and optionally the feedback cache)\n")
	fmt.Printf("  serve          Run the HTTP API server\n")
	fmt.Printf("  help           Show this message\n\n")
	fmt.Printf("Options:\n")
	flag.PrintDefaults()
}

func main() {
	var (
		dataDir         = flag.String("data-dir", "./solver_data", "Directory for persisted artifacts")
		wordsFile       = flag.String("words", "", "Path to a word list overriding the embedded vocabulary")
		startWord       = flag.String("start-word", "roate", "Opening guess / tree start word")
		depth           = flag.Uint("depth", 6, "Decision tree generation depth")
		output          = flag.String("output", "", "Output path for generated decision tree")
		scoring         = flag.String("scoring", config.ScoringExpected, "Scoring mode: expected or minimax")
		workers         = flag.Int("workers", 0, "Parallel scoring workers (0 = one per CPU, minimum 4)")
		hardMode        = flag.Bool("hard-mode", false, "Constrain guesses to honor previous feedback")
		rebuildFeedback = flag.Bool("feedback-table", false, "Rebuild the feedback cache before generating")
		dumpJSON        = flag.Bool("dump-json", false, "Emit a JSON trace for solve mode instead of text")
		port            = flag.String("port", "8080", "Port for serve mode")
	)

	mode := ""
	args := os.Args[1:]
	if len(args) > 0 && args[0][0] != '-' {
		mode = args[0]
		args = args[1:]
	}
	if err := flag.CommandLine.Parse(args); err != nil {
		os.Exit(1)
	}
	positional := flag.CommandLine.Args()

	if mode == "" || mode == "help" {
		printUsage()
		if mode == "" {
			os.Exit(1)
		}
		return
	}

	settings := config.SolverSettings{
		DataDir:     *dataDir,
		WordsFile:   *wordsFile,
		StartWord:   *startWord,
		TreeDepth:   uint32(*depth),
		ScoringMode: *scoring,
		Workers:     *workers,
		HardMode:    *hardMode,
	}
	settings.ApplyDefaults()
	if problems := settings.Validate(); len(problems) > 0 {
		for _, p := range problems {
			fmt.Fprintln(os.Stderr, "Invalid settings:", p)
		}
		os.Exit(1)
	}

	wordList := words.Default()
	if settings.WordsFile != "" {
		var err error
		wordList, err = words.LoadFile(settings.WordsFile)
		if err != nil {
			log.Fatalf("Failed to load word list: %v", err)
		}
	}

	eng, err := engine.NewEngine(settings, wordList)
	if err != nil {
		log.Fatalf("Failed to initialize engine: %v", err)
	}
	defer eng.Close()

	switch mode {
	case "solve":
		if len(positional) != 1 {
			fmt.Fprintln(os.Stderr, "solve mode requires exactly one target word")
			os.Exit(1)
		}
		runSolve(eng, positional[0], *hardMode, *dumpJSON)
	case "start":
		runStart(eng)
	case "generate":
		runGenerate(eng, settings, uint32(*depth), *output, *rebuildFeedback)
	case "serve":
		runServe(eng, *port)
	default:
		fmt.Fprintf(os.Stderr, "Unknown mode '%s'\n", mode)
		printUsage()
		os.Exit(1)
	}
}

func runSolve(eng *engine.Engine, word string, hardMode, dumpJSON bool) {
	result, err := eng.Solve(word, hardMode)
	if err != nil {
		log.Fatalf("Solve failed: %v", err)
	}

	if dumpJSON {
		encoded, marshalErr := json.Marshal(result)
		if marshalErr != nil {
			log.Fatalf("Failed to encode trace: %v", marshalErr)
		}
		fmt.Println(string(encoded))
		return
	}

	for _, step := range result.Steps {
		fmt.Printf("%s %s\n", step.Guess, step.Pattern)
	}
	if result.Solved {
		fmt.Printf("Solved in %d guesses\n", result.Turns)
	} else {
		fmt.Printf("Failed to solve '%s'; gave up after turn %d with guess '%s'\n",
			result.Answer, result.Turns, result.LastGuess)
		os.Exit(1)
	}
}

func runStart(eng *engine.Engine) {
	fmt.Printf("Calculating the best starting word across %d words...\n", eng.VocabularySize())
	result, err := eng.BestOpening()
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}
	fmt.Printf("Best starting word: %s (score %.0f, %dms)\n", result.Word, result.Score, result.TookMs)
}

func runGenerate(eng *engine.Engine, settings config.SolverSettings, depth uint32, output string, rebuildFeedback bool) {
	summary, err := eng.GenerateTree(services.GenerateRequest{
		StartWord:       settings.StartWord,
		Depth:           depth,
		Output:          output,
		RebuildFeedback: rebuildFeedback,
	})
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}
	fmt.Printf("Wrote %s (%d bytes, states=%d, backtracks=%d)\n",
		summary.Path, summary.Bytes, summary.States, summary.Backtracks)
}

func runServe(eng *engine.Engine, port string) {
	router := gin.Default()
	api.SetupRoutes(router, eng)

	log.Printf("Starting server on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
