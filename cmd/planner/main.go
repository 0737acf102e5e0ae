// Command planner runs the search core against one of the reference
// toy environments and prints the resulting action trace, grounded on
// cmd/hive/main.go's flag-parsing and klog-init style.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	"github.com/torvik/mctscore/internal/env"
	"github.com/torvik/mctscore/internal/env/chainmdp"
	"github.com/torvik/mctscore/internal/env/gridworld"
	"github.com/torvik/mctscore/internal/estimators"
	"github.com/torvik/mctscore/internal/parameters"
	"github.com/torvik/mctscore/internal/players"
	"github.com/torvik/mctscore/internal/search"
	"github.com/torvik/mctscore/internal/tree"
)

var (
	flagEnv    = flag.String("env", "grid", "Environment to plan over: grid or chain")
	flagConfig = flag.String(
		"config",
		"selection=ucb,c=1.4,discount=0.9,budget=200",
		"Planner configuration, e.g. 'selection=puct,c=1.1,discount=0.99,budget=400,rollout_budget=20'")
	flagSteps    = flag.Int("steps", 10, "Number of episode steps to plan and act over")
	flagParallel = flag.Int("parallel", 1, "Number of independent searches to run concurrently per step, for demo purposes")
	flagSeed     = flag.Uint64("seed", 1, "Base RNG seed")
)

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("6"))

var barStyle = lipgloss.NewStyle().
	Background(lipgloss.Color("4")).
	Foreground(lipgloss.Color("0"))

// renderHistogram renders one bar per root action proportional to the
// tree-evaluation distribution's mass, in the teacher's boxed-Render
// style rather than raw printf padding.
func renderHistogram(names []string, probs []float32) string {
	const width = 30
	var out string
	for i, p := range probs {
		name := actionName(names, i)
		filled := int(p * width)
		bar := barStyle.Render(fmt.Sprintf("%*s", filled, ""))
		out += fmt.Sprintf("%-6s %s %.3f\n", name, bar, p)
	}
	return out
}

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	environment, actionNames, err := buildEnvironment(*flagEnv)
	if err != nil {
		klog.Exitf("%+v", err)
	}

	params := parameters.NewFromConfigString(*flagConfig)
	rng := rand.New(rand.NewPCG(*flagSeed, *flagSeed+1))
	cfg, err := players.NewFromParams(params, nil, rng)
	if err != nil {
		klog.Exitf("failed to build planner from config %q: %+v", *flagConfig, err)
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("planning over %q for %d steps", *flagEnv, *flagSteps)))

	obs, _, err := environment.Reset(int64(*flagSeed))
	if err != nil {
		klog.Exitf("reset failed: %+v", err)
	}

	var incomingReward float32
	for step := 0; step < *flagSteps; step++ {
		root, err := runSearches(cfg.Driver, environment, cfg.Budget, obs, incomingReward, *flagParallel)
		if err != nil {
			klog.Exitf("search failed at step %d: %+v", step, err)
		}

		dist, err := cfg.TreeEvaluation.Evaluate(root)
		if err != nil {
			klog.Exitf("tree evaluation failed at step %d: %+v", step, err)
		}
		action := dist.Sample(rng)

		name := actionName(actionNames, action)
		fmt.Printf("step %2d: action=%-6s value=%.3f visits=%d\n", step, name, root.DefaultValue(), root.Visits())
		if klog.V(1).Enabled() {
			fmt.Print(renderHistogram(actionNames, dist.Probs))
		}

		nextObs, reward, terminated, truncated, _, err := environment.Step(action)
		if err != nil {
			klog.Exitf("environment step failed: %+v", err)
		}
		obs, incomingReward = nextObs, reward
		if terminated || truncated {
			fmt.Println(headerStyle.Render(fmt.Sprintf("episode finished after %d steps (terminated=%v truncated=%v)", step+1, terminated, truncated)))
			break
		}
	}
}

// runSearches grows parallel independent trees from the same state using
// per-search RNG streams and returns the one with the most root visits,
// demonstrating the core's "multiple independent searches in parallel
// goroutines" concurrency model (see the search.Driver doc comment). Each
// slot searches with its own copy of driverTemplate whose Rng (and, for a
// random-rollout estimator, rollout Rng) is seeded from driverTemplate.Rng
// before any goroutine starts.
func runSearches(driverTemplate *search.Driver, environment env.Environment, budget int, obs env.Observation, incomingReward float32, parallel int) (*tree.Node, error) {
	if parallel <= 1 {
		return driverTemplate.Search(environment, budget, obs, incomingReward)
	}

	roots := make([]*tree.Node, parallel)
	var g errgroup.Group
	for i := 0; i < parallel; i++ {
		i := i
		searchID := uuid.New()
		slot := *driverTemplate
		slot.Rng = rand.New(rand.NewPCG(driverTemplate.Rng.Uint64(), driverTemplate.Rng.Uint64()))
		if rollout, ok := slot.Estimator.(*estimators.RandomRollout); ok {
			slot.Estimator = estimators.NewRandomRollout(rollout.Budget, slot.Rng)
		}
		g.Go(func() error {
			klog.V(2).Infof("search %s starting (slot %d)", searchID, i)
			root, err := slot.Search(environment, budget, obs, incomingReward)
			if err != nil {
				return errors.Wrapf(err, "parallel search slot %d", i)
			}
			roots[i] = root
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	best := roots[0]
	for _, r := range roots[1:] {
		if r.Visits() > best.Visits() {
			best = r
		}
	}
	return best, nil
}

func buildEnvironment(kind string) (env.Environment, []string, error) {
	switch kind {
	case "grid":
		return gridworld.New(4, 30), []string{"up", "down", "left", "right"}, nil
	case "chain":
		return chainmdp.New(5), []string{"left", "right"}, nil
	default:
		return nil, nil, errors.Errorf("unknown environment %q, want grid or chain", kind)
	}
}

func actionName(names []string, action int) string {
	if action < 0 || action >= len(names) {
		return fmt.Sprintf("#%d", action)
	}
	return names[action]
}
