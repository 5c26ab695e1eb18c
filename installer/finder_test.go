package installer_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	fakesys "github.com/cloudfoundry/bosh-utils/system/fakes"

	. "github.com/osmedia/multiboot/installer"
)

var _ = Describe("Finder", func() {
	var (
		fs     *fakesys.FakeFileSystem
		finder *Finder
	)

	const appDir = "/Applications"

	addBundle := func(name string, contents ...string) string {
		path := appDir + "/" + name
		err := fs.MkdirAll(path, 0755)
		Expect(err).ToNot(HaveOccurred())
		for i, content := range contents {
			err := fs.WriteFileString(path+"/file"+string(rune('a'+i)), content)
			Expect(err).ToNot(HaveOccurred())
		}
		return path
	}

	BeforeEach(func() {
		fs = fakesys.NewFakeFileSystem()
		logger := boshlog.NewLogger(boshlog.LevelNone)
		finder = NewFinder(fs, logger)

		err := fs.MkdirAll(appDir, 0755)
		Expect(err).ToNot(HaveOccurred())
	})

	It("finds bundles matching the target keyword and Install", func() {
		sierra := addBundle("Install macOS Sierra.app", "0123456789")
		fs.SetGlob(appDir+"/*.app", []string{sierra})

		found, err := finder.Find(appDir, DefaultTargets())
		Expect(err).ToNot(HaveOccurred())
		Expect(found).To(HaveLen(1))
		Expect(found[0].Name).To(Equal("macOS Sierra"))
		Expect(found[0].Path).To(Equal(sierra))
		Expect(found[0].Volume).To(Equal("INSTALL_SIERRA"))
		Expect(found[0].SizeBytes).To(Equal(uint64(10)))
	})

	It("never hands a High Sierra bundle to the Sierra target", func() {
		highSierra := addBundle("Install macOS High Sierra.app", "abc")
		fs.SetGlob(appDir+"/*.app", []string{highSierra})

		found, err := finder.Find(appDir, DefaultTargets())
		Expect(err).ToNot(HaveOccurred())
		Expect(found).To(HaveLen(1))
		Expect(found[0].Name).To(Equal("macOS High Sierra"))
		Expect(found[0].Volume).To(Equal("INSTALL_HIGHSIERRA"))
	})

	It("requires the bundle name to contain Install", func() {
		bundle := addBundle("macOS Sierra Notes.app", "abc")
		fs.SetGlob(appDir+"/*.app", []string{bundle})

		_, err := finder.Find(appDir, DefaultTargets())
		Expect(err).To(HaveOccurred())

		var noneErr *NoneFoundError
		Expect(errors.As(err, &noneErr)).To(BeTrue())
	})

	It("uses the first candidate when several bundles match one target", func() {
		first := addBundle("Install macOS Sierra 1.app", "abc")
		second := addBundle("Install macOS Sierra 2.app", "defgh")
		fs.SetGlob(appDir+"/*.app", []string{first, second})

		found, err := finder.Find(appDir, DefaultTargets())
		Expect(err).ToNot(HaveOccurred())
		Expect(found).To(HaveLen(1))
		Expect(found[0].Path).To(Equal(first))
	})

	It("skips a matching path that is not a directory", func() {
		path := appDir + "/Install macOS Sierra.app"
		err := fs.WriteFileString(path, "not a bundle")
		Expect(err).ToNot(HaveOccurred())
		fs.SetGlob(appDir+"/*.app", []string{path})

		_, err = finder.Find(appDir, DefaultTargets())
		Expect(err).To(HaveOccurred())
	})

	It("fails with DirMissingError when the applications directory is absent", func() {
		_, err := finder.Find("/nowhere", DefaultTargets())
		Expect(err).To(HaveOccurred())

		var missingErr *DirMissingError
		Expect(errors.As(err, &missingErr)).To(BeTrue())
	})

	It("fails when the directory scan fails", func() {
		fs.GlobErr = errors.New("fake-glob-error")

		_, err := finder.Find(appDir, DefaultTargets())
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("fake-glob-error"))
	})
})
