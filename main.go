package main

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
)

func main() {
	fmt.Println("╔════════════════════════════════════════════════════════════╗")
	fmt.Println("║        STOCHASTIC PETRI NET SIMULATION CORE - DEMO          ║")
	fmt.Println("╚════════════════════════════════════════════════════════════╝")
	fmt.Println()
	fmt.Println("This demo walks through the scheduler's firing rule:")
	fmt.Println()
	fmt.Println("1. Inhibitor bootstrap   - a transition that fires exactly once")
	fmt.Println("2. Weighted tie-break    - immediate transitions split by weight")
	fmt.Println("3. Priority preemption   - higher priority always wins")
	fmt.Println("4. Timed interleaving    - deadline-ordered timed transitions")
	fmt.Println("5. Collector saturation - the driver halts on its own")
	fmt.Println()
	fmt.Print("Select example (1-5) or 'q' to quit: ")

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Scan()
	choice := scanner.Text()

	var example string
	switch choice {
	case "1":
		example = "examples/01_inhibitor_bootstrap.go"
	case "2":
		example = "examples/02_weighted_tiebreak.go"
	case "3":
		example = "examples/03_priority_preemption.go"
	case "4":
		example = "examples/04_timed_interleaving.go"
	case "5":
		example = "examples/05_collector_saturation.go"
	case "q", "Q":
		fmt.Println("Goodbye!")
		return
	default:
		fmt.Println("Invalid choice")
		return
	}

	fmt.Println()
	fmt.Println("Running example...")
	fmt.Println()

	cmd := exec.Command("go", "run", example)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		fmt.Printf("Error running example: %v\n", err)
	}
}
