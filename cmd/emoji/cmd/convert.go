package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yleoer/emoji/pkg/converter"
	"github.com/yleoer/emoji/pkg/util"
)

var (
	convertFile string
	convertJSON bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [text...]",
	Short: "Convert text from arguments, a file or stdin",
	Long: `Convert text given as arguments (joined by spaces), read from --file, or read from stdin.

With --json the input must be a JSON array; every string element is converted and
any non-string element is reported as invalid input.`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertFile, "file", "f", "", "Read input from file (UTF-8 or GBK)")
	convertCmd.Flags().BoolVar(&convertJSON, "json", false, "Treat input as a JSON array of values")
}

func runConvert(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	var input string
	switch {
	case len(args) > 0:
		input = strings.Join(args, " ")
	case convertFile != "":
		input, err = util.ReadTextFileContent(convertFile)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", convertFile, err)
		}
	default:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		input, err = util.DecodeText(data, "stdin")
		if err != nil {
			return err
		}
	}

	if convertJSON {
		return convertJSONValues(cmd.OutOrStdout(), cmd.ErrOrStderr(), input, a.convertValue)
	}
	fmt.Fprint(cmd.OutOrStdout(), a.text.Convert(input))
	if len(args) > 0 {
		fmt.Fprintln(cmd.OutOrStdout())
	}
	return nil
}

// convertJSONValues 逐个转换 JSON 数组中的值，非字符串的位置输出 null
func convertJSONValues(w, errW io.Writer, input string, convert func(any) (string, error)) error {
	var values []any
	if err := json.Unmarshal([]byte(input), &values); err != nil {
		return fmt.Errorf("input is not a JSON array: %w", err)
	}
	results := make([]*string, len(values))
	failed := 0
	for i, v := range values {
		out, err := convert(v)
		if err != nil {
			fmt.Fprintf(errW, "Error: item %d: %v\n", i, err)
			failed++
			continue
		}
		results[i] = &out
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(results); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d items rejected: %w", failed, len(values), converter.ErrInvalidInput)
	}
	return nil
}
