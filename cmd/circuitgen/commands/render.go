package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	ghttp "github.com/panyam/goutils/http"
	"github.com/spf13/cobra"

	"github.com/panyam/circuitgen"
	"github.com/panyam/circuitgen/circuit"
	"github.com/panyam/circuitgen/viz"
)

var renderCmd = &cobra.Command{
	Use:   "render [description]",
	Short: "Render a circuit description to an SVG schematic",
	Long: `Render a free-form circuit description to an SVG schematic.

The description comes from the argument, --input, or stdin. Rendering runs
locally by default; with --server the description is sent to a running
circuitgen server instead.

Examples:
  circuitgen render "電池と抵抗とLEDを直列に接続" -o circuit.svg
  circuitgen render --input description.txt
  echo "R1 and C1 connected" | circuitgen render
  circuitgen render "LEDとスイッチと電池の回路" --server http://localhost:8080`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile, _ := cmd.Flags().GetString("input")
		outputFile, _ := cmd.Flags().GetString("output")
		format, _ := cmd.Flags().GetString("format")

		description, err := readDescription(args, inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading description: %v\n", err)
			os.Exit(1)
		}

		var content string
		switch {
		case format == "dot":
			c := circuit.Extract(description)
			content, err = viz.NewDotGenerator().Generate(c)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error generating dot output: %v\n", err)
				os.Exit(1)
			}
		case serverURL != "" || os.Getenv("CIRCUITGEN_SERVER_URL") != "":
			content, err = renderRemote(description)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error rendering via server: %v\n", err)
				os.Exit(1)
			}
		case format == "svg":
			content = circuitgen.Render(description)
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown format '%s'. Choose 'svg' or 'dot'.\n", format)
			os.Exit(1)
		}

		writeOutput(outputFile, content)
	},
}

// readDescription resolves the description from the arg, the input file, or
// stdin, in that priority order.
func readDescription(args []string, inputFile string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if inputFile != "" {
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func getServerURL() string {
	if serverURL != "" {
		return serverURL
	}
	if envURL := os.Getenv("CIRCUITGEN_SERVER_URL"); envURL != "" {
		return envURL
	}
	return "http://localhost:8080"
}

func apiEndpoint(endpoint string) string {
	return strings.TrimSuffix(getServerURL(), "/") + endpoint
}

// renderRemote posts the description to a running circuitgen server and
// returns the SVG from its response.
func renderRemote(description string) (string, error) {
	req, err := ghttp.NewJsonRequest("POST", apiEndpoint("/api/generate"),
		map[string]any{"description": description})
	if err != nil {
		return "", err
	}
	resp, err := ghttp.Call(req, nil)
	if err != nil {
		return "", err
	}
	data, ok := resp.(map[string]any)
	if !ok {
		return "", fmt.Errorf("unexpected response from server: %v", resp)
	}
	svg, ok := data["svg"].(string)
	if !ok {
		return "", fmt.Errorf("server response has no svg field")
	}
	return svg, nil
}

// writeOutput writes the SVG to the output file, or stdout when none given.
func writeOutput(outputFile, content string) {
	if content == "" {
		return
	}
	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(content), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing schematic to %s: %v\n", outputFile, err)
			os.Exit(1)
		}
		fmt.Printf("Schematic written to %s\n", outputFile)
	} else {
		fmt.Println(content)
	}
}

func init() {
	renderCmd.Flags().StringP("input", "i", "", "Read the description from a file")
	renderCmd.Flags().StringP("output", "o", "", "Write the SVG to a file instead of stdout")
	renderCmd.Flags().String("format", "svg", "Output format: svg (schematic) or dot (extracted graph)")
	rootCmd.AddCommand(renderCmd)
}
