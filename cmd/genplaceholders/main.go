package main

import (
	"flag"
	"fmt"
	"os"

	"chosenoffset.com/hexboard/internal/placeholders"
)

func main() {
	dir := flag.String("dir", "data/assets", "Directory to write the atlas into")
	flag.Parse()

	fmt.Println("Hexboard Placeholder Sprite Generator")
	fmt.Println("=====================================")
	fmt.Println()

	if err := placeholders.GenerateAndSave(*dir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated %s/%s and %s/%s\n", *dir, placeholders.AtlasImageName, *dir, placeholders.AtlasConfigName)
	fmt.Println("Run cmd/hexboard to see the board.")
}
