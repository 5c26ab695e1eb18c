package app_test

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	fakesys "github.com/cloudfoundry/bosh-utils/system/fakes"

	. "github.com/osmedia/multiboot/app"
)

const externalListPlist = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>AllDisksAndPartitions</key>
	<array>
		<dict>
			<key>Content</key>
			<string>FDisk_partition_scheme</string>
			<key>DeviceIdentifier</key>
			<string>disk2</string>
		</dict>
	</array>
</dict>
</plist>`

const externalInfoPlist = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>DeviceIdentifier</key>
	<string>disk2</string>
	<key>Ejectable</key>
	<true/>
	<key>Internal</key>
	<false/>
	<key>WholeDisk</key>
	<true/>
	<key>MediaName</key>
	<string>SanDisk Ultra</string>
	<key>TotalSize</key>
	<integer>64023257088</integer>
</dict>
</plist>`

var _ = Describe("App", func() {
	var (
		fs     *fakesys.FakeFileSystem
		runner *fakesys.FakeCmdRunner
		in     *bytes.Buffer
		out    *bytes.Buffer
	)

	BeforeEach(func() {
		fs = fakesys.NewFakeFileSystem()
		runner = fakesys.NewFakeCmdRunner()
		runner.AvailableCommands["diskutil"] = true
		in = &bytes.Buffer{}
		out = &bytes.Buffer{}
	})

	newApp := func(args ...string) App {
		logger := boshlog.NewLogger(boshlog.LevelNone)
		anApp := New(logger, fs, runner, in, out)
		err := anApp.Setup(append([]string{"multiboot"}, args...))
		Expect(err).ToNot(HaveOccurred())
		return anApp
	}

	stubExternalDisk := func() {
		runner.AddCmdResult("diskutil list -plist", fakesys.FakeCmdResult{Stdout: externalListPlist})
		runner.AddCmdResult("diskutil info -plist disk2", fakesys.FakeCmdResult{Stdout: externalInfoPlist})
	}

	Describe("restore mode", func() {
		It("erases the picked disk back to a single volume", func() {
			stubExternalDisk()
			runner.AddCmdResult("diskutil unmountDisk /dev/disk2", fakesys.FakeCmdResult{
				Stdout: "Unmount of all volumes on disk2 was successful",
			})
			runner.AddProcess("diskutil eraseDisk ExFAT USB_DISK /dev/disk2", &fakesys.FakeProcess{})
			in.WriteString("1\nYES\n")

			err := newApp("-restore").Run()
			Expect(err).ToNot(HaveOccurred())

			Expect(out.String()).To(ContainSubstring("SanDisk Ultra (59.6 GB)"))
			Expect(out.String()).To(ContainSubstring("ALL data on /dev/disk2 will be erased"))
			Expect(out.String()).To(ContainSubstring("Disk restored to a single ExFAT volume"))

			Expect(runner.RunComplexCommands).To(HaveLen(1))
			Expect(runner.RunComplexCommands[0].Name).To(Equal("diskutil"))
			Expect(runner.RunComplexCommands[0].Args).To(Equal([]string{
				"eraseDisk", "ExFAT", "USB_DISK", "/dev/disk2",
			}))
		})

		It("cancels without touching the disk when erasure is not confirmed", func() {
			stubExternalDisk()
			in.WriteString("1\nno\n")

			err := newApp("-restore").Run()
			Expect(err).To(Equal(ErrCancelled))

			Expect(out.String()).To(ContainSubstring("Operation cancelled."))
			Expect(runner.RunComplexCommands).To(BeEmpty())
		})
	})

	Describe("failure reporting", func() {
		It("explains a missing applications directory", func() {
			anApp := newApp("-appDir", "/tmp/nowhere")

			err := anApp.Run()
			Expect(err).To(HaveOccurred())
			Expect(out.String()).To(ContainSubstring("Directory /tmp/nowhere does not exist."))
		})

		It("explains an empty device list", func() {
			runner.AddCmdResult("diskutil list -plist", fakesys.FakeCmdResult{Stdout: externalListPlist})
			runner.AddCmdResult("diskutil info -plist disk2", fakesys.FakeCmdResult{
				Stdout: strings.Replace(externalInfoPlist, "<key>Internal</key>\n\t<false/>", "<key>Internal</key>\n\t<true/>", 1),
			})
			in.WriteString("1\nYES\n")

			err := newApp("-restore").Run()
			Expect(err).To(HaveOccurred())
			Expect(out.String()).To(ContainSubstring("No external disk detected."))
		})
	})
})
