package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Prompt for one line of text and print it converted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		runInteractive(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), a.convertValue)
		return nil
	},
}

// runInteractive 读取一行输入并输出结果，错误只打印不返回
func runInteractive(r io.Reader, w, errW io.Writer, convert func(any) (string, error)) {
	fmt.Fprint(w, "Enter your text: ")
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		fmt.Fprintf(errW, "Error: %v\n", err)
		return
	}
	result, err := convert(strings.TrimRight(line, "\r\n"))
	if err != nil {
		fmt.Fprintf(errW, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(w, "Result:", result)
}
