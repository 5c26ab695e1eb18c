package installmedia_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	fakesys "github.com/cloudfoundry/bosh-utils/system/fakes"

	. "github.com/osmedia/multiboot/installmedia"
)

var _ = Describe("Verifier", func() {
	var (
		fs       *fakesys.FakeFileSystem
		verifier *Verifier
	)

	const volPath = "/Volumes/INSTALL_SIERRA"
	const minSize = uint64(1024 * 1024)

	BeforeEach(func() {
		fs = fakesys.NewFakeFileSystem()
		logger := boshlog.NewLogger(boshlog.LevelNone)
		verifier = NewVerifier(fs, logger, minSize)

		err := fs.MkdirAll(volPath, 0755)
		Expect(err).ToNot(HaveOccurred())
	})

	It("fails when the volume path does not exist", func() {
		// FakeFileSystem panics on Stat for unregistered paths; its supported
		// way to simulate a missing path is a registered file with StatErr set.
		goneFile := fakesys.NewFakeFile("/Volumes/GONE", fs)
		goneFile.StatErr = errors.New("stat /Volumes/GONE: no such file or directory")
		fs.RegisterOpenFile("/Volumes/GONE", goneFile)

		Expect(verifier.Verify("/Volumes/GONE")).To(BeFalse())
	})

	It("fails when the volume is empty", func() {
		fs.SetGlob(volPath+"/*", []string{})
		Expect(verifier.Verify(volPath)).To(BeFalse())
	})

	It("passes immediately when an expected artifact is present", func() {
		err := fs.MkdirAll(volPath+"/Applications", 0755)
		Expect(err).ToNot(HaveOccurred())
		fs.SetGlob(volPath+"/*", []string{volPath + "/Applications"})

		Expect(verifier.Verify(volPath)).To(BeTrue())
	})

	It("matches artifacts case-insensitively by containment", func() {
		err := fs.WriteFileString(volPath+"/basesystem.dmg", "x")
		Expect(err).ToNot(HaveOccurred())
		fs.SetGlob(volPath+"/*", []string{volPath + "/basesystem.dmg"})

		Expect(verifier.Verify(volPath)).To(BeTrue())
	})

	It("fails a volume holding only a tiny unexpected file", func() {
		err := fs.WriteFileString(volPath+"/random.txt", "0123456789")
		Expect(err).ToNot(HaveOccurred())
		fs.SetGlob(volPath+"/*", []string{volPath + "/random.txt"})

		Expect(verifier.Verify(volPath)).To(BeFalse())
	})

	It("passes a volume of unexpected but plausible content with the size fallback", func() {
		big := make([]byte, 2*1024*1024)
		err := fs.WriteFile(volPath+"/payload.bin", big)
		Expect(err).ToNot(HaveOccurred())
		fs.SetGlob(volPath+"/*", []string{volPath + "/payload.bin"})

		Expect(verifier.Verify(volPath)).To(BeTrue())
	})

	It("samples nested directories for the size fallback", func() {
		err := fs.MkdirAll(volPath+"/data", 0755)
		Expect(err).ToNot(HaveOccurred())
		big := make([]byte, 2*1024*1024)
		err = fs.WriteFile(volPath+"/data/payload.bin", big)
		Expect(err).ToNot(HaveOccurred())
		fs.SetGlob(volPath+"/*", []string{volPath + "/data"})

		Expect(verifier.Verify(volPath)).To(BeTrue())
	})

	It("fails when the volume cannot be listed", func() {
		err := fs.WriteFileString(volPath+"/x", "x")
		Expect(err).ToNot(HaveOccurred())
		fs.GlobErr = errors.New("fake-glob-error")

		Expect(verifier.Verify(volPath)).To(BeFalse())
	})

	Describe("ListItems", func() {
		It("returns the base names of the root entries", func() {
			fs.SetGlob(volPath+"/*", []string{volPath + "/a.txt", volPath + "/b"})
			Expect(verifier.ListItems(volPath)).To(Equal([]string{"a.txt", "b"}))
		})
	})
})
