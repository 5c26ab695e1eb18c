package fakes

type FakePrompter struct {
	PromptWithRetryAnswers []string
	PromptWithRetryErr     error
	PromptWithRetryPrompts []string

	ConfirmAnswer  bool
	ConfirmErr     error
	ConfirmPrompts []string
	ConfirmTokens  []string
}

func (p *FakePrompter) PromptWithRetry(prompt, invalidMsg string, validate func(string) (string, bool)) (string, error) {
	p.PromptWithRetryPrompts = append(p.PromptWithRetryPrompts, prompt)
	if p.PromptWithRetryErr != nil {
		return "", p.PromptWithRetryErr
	}

	for _, answer := range p.PromptWithRetryAnswers {
		if value, ok := validate(answer); ok {
			return value, nil
		}
	}

	return "", nil
}

func (p *FakePrompter) Confirm(prompt, token string) (bool, error) {
	p.ConfirmPrompts = append(p.ConfirmPrompts, prompt)
	p.ConfirmTokens = append(p.ConfirmTokens, token)
	return p.ConfirmAnswer, p.ConfirmErr
}
