package ui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"
)

type tableRenderer struct {
	output io.Writer
	styles Styles
	color  bool
	width  int
}

func (r *tableRenderer) RenderListing(l Listing) error {
	if len(l.Hooks) == 0 {
		_, err := fmt.Fprintln(r.output, r.styles.Muted.Render("No hooks registered"))
		return err
	}

	data := pterm.TableData{{"HOOK", "KIND", "SIGNATURE", "ACTIVE"}}
	for _, h := range l.Hooks {
		data = append(data, []string{
			r.styles.Name.Render(h.Name),
			h.Kind,
			h.Signature,
			fmt.Sprintf("%d/%d", h.Active(), len(h.Implementations)),
		})
	}
	return r.table(data)
}

func (r *tableRenderer) RenderHooks(hooks []HookView) error {
	for _, h := range hooks {
		rendered := RenderMarkdown(HookMarkdown(h), r.width, r.color)
		if _, err := fmt.Fprint(r.output, rendered); err != nil {
			return err
		}
	}
	return nil
}

func (r *tableRenderer) RenderInvocation(inv Invocation) error {
	title := fmt.Sprintf("%s %s", inv.Hook, inv.Signature)
	if _, err := fmt.Fprintln(r.output, r.styles.Title.Render(title)); err != nil {
		return err
	}
	if len(inv.Results) == 0 {
		_, err := fmt.Fprintln(r.output, r.styles.Muted.Render("No results"))
		return err
	}

	data := pterm.TableData{{"#", "RESULT"}}
	for i, v := range inv.Results {
		data = append(data, []string{strconv.Itoa(i), v})
	}
	return r.table(data)
}

func (r *tableRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, r.styles.Success.Render(msg))
	return err
}

func (r *tableRenderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, r.styles.Error.Render("Error:")+" "+err.Error())
	return werr
}

func (r *tableRenderer) table(data pterm.TableData) error {
	rendered, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.output, rendered)
	return err
}
