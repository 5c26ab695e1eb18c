package ui_test

import (
	"bytes"
	"strconv"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/osmedia/multiboot/ui"
)

var _ = Describe("ConsolePrompter", func() {
	var out *bytes.Buffer

	BeforeEach(func() {
		out = &bytes.Buffer{}
	})

	acceptDigits := func(answer string) (string, bool) {
		if _, err := strconv.Atoi(answer); err != nil {
			return "", false
		}
		return answer, true
	}

	Describe("PromptWithRetry", func() {
		It("returns the validated value on the first valid answer", func() {
			prompter := ui.NewConsolePrompter(strings.NewReader("2\n"), out, 3)

			value, err := prompter.PromptWithRetry("pick: ", "invalid", acceptDigits)
			Expect(err).ToNot(HaveOccurred())
			Expect(value).To(Equal("2"))
		})

		It("re-prompts after invalid answers and prints the invalid message", func() {
			prompter := ui.NewConsolePrompter(strings.NewReader("x\ny\n7\n"), out, 3)

			value, err := prompter.PromptWithRetry("pick: ", "invalid choice", acceptDigits)
			Expect(err).ToNot(HaveOccurred())
			Expect(value).To(Equal("7"))
			Expect(strings.Count(out.String(), "invalid choice")).To(Equal(2))
		})

		It("fails with RetriesExceededError once the shared bound is exhausted", func() {
			prompter := ui.NewConsolePrompter(strings.NewReader("a\nb\nc\nd\n"), out, 3)

			_, err := prompter.PromptWithRetry("pick: ", "invalid", acceptDigits)
			Expect(err).To(HaveOccurred())

			retriesErr, ok := err.(*ui.RetriesExceededError)
			Expect(ok).To(BeTrue())
			Expect(retriesErr.Attempts).To(Equal(3))
		})

		It("trims surrounding whitespace before validating", func() {
			prompter := ui.NewConsolePrompter(strings.NewReader("  5  \n"), out, 3)

			value, err := prompter.PromptWithRetry("pick: ", "invalid", acceptDigits)
			Expect(err).ToNot(HaveOccurred())
			Expect(value).To(Equal("5"))
		})
	})

	Describe("Confirm", func() {
		It("is true only for the exact token", func() {
			prompter := ui.NewConsolePrompter(strings.NewReader("YES\n"), out, 3)
			ok, err := prompter.Confirm("erase? ", "YES")
			Expect(err).ToNot(HaveOccurred())
			Expect(ok).To(BeTrue())
		})

		It("is false for anything else", func() {
			prompter := ui.NewConsolePrompter(strings.NewReader("yes\n"), out, 3)
			ok, err := prompter.Confirm("erase? ", "YES")
			Expect(err).ToNot(HaveOccurred())
			Expect(ok).To(BeFalse())
		})
	})
})
