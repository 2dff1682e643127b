package cli

import (
	"errors"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/devbrain/neutrino-new/internal/project"
	"github.com/spf13/cobra"
)

// prompter asks the user for values. The survey implementation drives a
// real terminal; tests substitute a scripted one.
type prompter interface {
	Input(message, def string, validate func(string) error) (string, error)
	Select(message string, options []string, def string) (string, error)
	Confirm(message string, def bool) (bool, error)
}

var newPrompter = func() prompter { return surveyPrompter{} }

type surveyPrompter struct{}

func (surveyPrompter) Input(message, def string, validate func(string) error) (string, error) {
	var out string
	var opts []survey.AskOpt
	if validate != nil {
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			s, _ := ans.(string)
			return validate(s)
		}))
	}
	err := survey.AskOne(&survey.Input{Message: message, Default: def}, &out, opts...)
	return out, translateSurveyErr(err)
}

func (surveyPrompter) Select(message string, options []string, def string) (string, error) {
	var out string
	err := survey.AskOne(&survey.Select{Message: message, Options: options, Default: def}, &out)
	return out, translateSurveyErr(err)
}

func (surveyPrompter) Confirm(message string, def bool) (bool, error) {
	var out bool
	err := survey.AskOne(&survey.Confirm{Message: message, Default: def}, &out)
	return out, translateSurveyErr(err)
}

var errAborted = errors.New("aborted")

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return errAborted
	}
	return err
}

// askOptions fills in every option the user did not set with a flag. The
// current value of each option is offered as the default answer.
func askOptions(p prompter, cmd *cobra.Command, opts *project.Options) error {
	changed := cmd.Flags().Changed

	if opts.Name == "" {
		name, err := p.Input("Project name:", "", func(s string) error {
			o := *opts
			o.Name = s
			return o.Validate()
		})
		if err != nil {
			return err
		}
		opts.Name = strings.TrimSpace(name)
	}

	if !changed("type") {
		types := make([]string, len(project.Types))
		for i, t := range project.Types {
			types[i] = string(t)
		}
		answer, err := p.Select("Project type:", types, string(opts.Type))
		if err != nil {
			return err
		}
		if opts.Type, err = project.ParseType(answer); err != nil {
			return err
		}
	}

	if !changed("std") {
		stds := make([]string, len(project.Standards))
		for i, s := range project.Standards {
			stds[i] = strconv.Itoa(s)
		}
		answer, err := p.Select("C++ standard:", stds, strconv.Itoa(opts.Std))
		if err != nil {
			return err
		}
		if opts.Std, err = project.ParseStd(answer); err != nil {
			return err
		}
	}

	if !changed("description") {
		def := opts.Description
		if def == "" {
			def = project.DefaultDescription(opts.Type)
		}
		answer, err := p.Input("Description:", def, nil)
		if err != nil {
			return err
		}
		opts.Description = strings.TrimSpace(answer)
	}

	if !changed("author") {
		answer, err := p.Input("Author (for LICENSE):", opts.Author, nil)
		if err != nil {
			return err
		}
		if answer = strings.TrimSpace(answer); answer != "" {
			opts.Author = answer
		}
	}

	if !changed("deps") {
		answer, err := p.Input("Dependencies (comma separated):", strings.Join(opts.Deps, ","), nil)
		if err != nil {
			return err
		}
		opts.Deps = project.SplitDeps([]string{answer})
	}

	// Tests and examples only exist for libraries.
	if !opts.Type.IsLibrary() {
		return nil
	}
	if !changed("with-tests") && !changed("no-tests") {
		yes, err := p.Confirm("Include tests?", opts.WithTests)
		if err != nil {
			return err
		}
		opts.WithTests = yes
	}
	if !changed("with-examples") && !changed("no-examples") {
		yes, err := p.Confirm("Include examples?", opts.WithExamples)
		if err != nil {
			return err
		}
		opts.WithExamples = yes
	}
	return nil
}
