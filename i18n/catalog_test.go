package i18n_test

import (
	"os"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/osmedia/multiboot/i18n"
)

var _ = Describe("Catalog", func() {
	Describe("T", func() {
		It("returns the translation for the selected language", func() {
			catalog := i18n.NewCatalog("fr")
			Expect(catalog.T("progress.done")).To(Equal("Terminé !"))
		})

		It("substitutes named parameters", func() {
			catalog := i18n.NewCatalog("en")
			msg := catalog.T("disk.pick_target", "max", "3")
			Expect(msg).To(Equal("Pick the target disk [1-3]: "))
		})

		It("substitutes the same parameter at every occurrence", func() {
			catalog := i18n.NewCatalog("en")
			msg := catalog.T("install_media.fail", "name", "macOS Sierra", "code", "1")
			Expect(msg).To(ContainSubstring("macOS Sierra"))
			Expect(msg).To(ContainSubstring("exit code 1"))
		})

		It("falls back to English for an unsupported language", func() {
			catalog := i18n.NewCatalog("de_DE.UTF-8")
			Expect(catalog.Language()).To(Equal(i18n.LanguageEnglish))
			Expect(catalog.T("progress.done")).To(Equal("Done!"))
		})

		It("returns the key itself when no table has it", func() {
			catalog := i18n.NewCatalog("en")
			Expect(catalog.T("no.such.key")).To(Equal("no.such.key"))
		})
	})

	Describe("DetectLanguage", func() {
		var origLCAll, origLCMessage, origLang string

		BeforeEach(func() {
			origLCAll = os.Getenv("LC_ALL")
			origLCMessage = os.Getenv("LC_MESSAGE")
			origLang = os.Getenv("LANG")
		})

		AfterEach(func() {
			os.Setenv("LC_ALL", origLCAll)         //nolint:errcheck
			os.Setenv("LC_MESSAGE", origLCMessage) //nolint:errcheck
			os.Setenv("LANG", origLang)            //nolint:errcheck
		})

		It("prefers LC_ALL over LANG", func() {
			os.Setenv("LC_ALL", "fr_FR.UTF-8") //nolint:errcheck
			os.Setenv("LANG", "en_US.UTF-8")   //nolint:errcheck
			Expect(i18n.DetectLanguage()).To(Equal(i18n.LanguageFrench))
		})

		It("falls back to English for unknown locales", func() {
			os.Setenv("LC_ALL", "ja_JP.UTF-8")    //nolint:errcheck
			os.Setenv("LC_MESSAGE", "ja_JP.UTF-8") //nolint:errcheck
			os.Setenv("LANG", "ja_JP.UTF-8")      //nolint:errcheck
			Expect(i18n.DetectLanguage()).To(Equal(i18n.LanguageEnglish))
		})
	})
})
