package progress_test

import (
	"bytes"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
	fakesys "github.com/cloudfoundry/bosh-utils/system/fakes"

	. "github.com/osmedia/multiboot/progress"
	"github.com/osmedia/multiboot/ui"
)

var _ = Describe("Executor", func() {
	var (
		runner   *fakesys.FakeCmdRunner
		out      *bytes.Buffer
		executor Executor
	)

	cmd := boshsys.Command{
		Name: "diskutil",
		Args: []string{"partitionDisk", "/dev/disk2", "GPT"},
	}

	BeforeEach(func() {
		runner = fakesys.NewFakeCmdRunner()
		out = &bytes.Buffer{}
		logger := boshlog.NewLogger(boshlog.LevelNone)
		executor = NewExecutor(runner, ui.NewBar(out), logger)
	})

	It("runs the command asynchronously with line writers attached", func() {
		runner.AddProcess("diskutil partitionDisk /dev/disk2 GPT", &fakesys.FakeProcess{
			WaitResult: boshsys.Result{ExitStatus: 0},
		})

		outcome, err := executor.RunWithProgress(cmd, nil, "Partitioning", 0)
		Expect(err).ToNot(HaveOccurred())
		Expect(outcome.ExitStatus).To(Equal(0))

		Expect(runner.RunComplexCommands).To(HaveLen(1))
		Expect(runner.RunComplexCommands[0].Name).To(Equal("diskutil"))
		Expect(runner.RunComplexCommands[0].Stdout).ToNot(BeNil())
		Expect(runner.RunComplexCommands[0].Stderr).ToNot(BeNil())
	})

	It("renders the label before the command starts", func() {
		runner.AddProcess("diskutil partitionDisk /dev/disk2 GPT", &fakesys.FakeProcess{
			WaitResult: boshsys.Result{ExitStatus: 0},
		})

		_, err := executor.RunWithProgress(cmd, nil, "Partitioning", 0)
		Expect(err).ToNot(HaveOccurred())
		Expect(out.String()).To(ContainSubstring("Partitioning"))
	})

	It("fails with ExecFailedError carrying the exit status on non-zero exit", func() {
		runner.AddProcess("diskutil partitionDisk /dev/disk2 GPT", &fakesys.FakeProcess{
			WaitResult: boshsys.Result{ExitStatus: 1},
		})

		outcome, err := executor.RunWithProgress(cmd, nil, "Partitioning", 0)
		Expect(err).To(HaveOccurred())
		Expect(outcome.ExitStatus).To(Equal(1))

		var execErr *ExecFailedError
		Expect(errors.As(err, &execErr)).To(BeTrue())
		Expect(execErr.ExitStatus).To(Equal(1))
		Expect(execErr.Command).To(Equal([]string{"diskutil", "partitionDisk", "/dev/disk2", "GPT"}))
	})

})
