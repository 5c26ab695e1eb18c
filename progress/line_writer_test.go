package progress_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/osmedia/multiboot/progress"
)

var _ = Describe("LineWriter", func() {
	var (
		lines  []string
		writer *LineWriter
	)

	BeforeEach(func() {
		lines = nil
		writer = NewLineWriter(func(line string) { lines = append(lines, line) })
	})

	It("emits complete lines regardless of chunk boundaries", func() {
		_, err := writer.Write([]byte("Erasing di"))
		Expect(err).ToNot(HaveOccurred())
		Expect(lines).To(BeEmpty())

		_, err = writer.Write([]byte("sk\nCopying files\nInsta"))
		Expect(err).ToNot(HaveOccurred())
		Expect(lines).To(Equal([]string{"Erasing disk", "Copying files"}))
	})

	It("strips carriage returns", func() {
		_, err := writer.Write([]byte("Erasing disk\r\n"))
		Expect(err).ToNot(HaveOccurred())
		Expect(lines).To(Equal([]string{"Erasing disk"}))
	})

	It("flushes a trailing partial line exactly once", func() {
		_, err := writer.Write([]byte("100% done"))
		Expect(err).ToNot(HaveOccurred())

		writer.Flush()
		writer.Flush()
		Expect(lines).To(Equal([]string{"100% done"}))
	})

	It("does not emit an empty line on flush", func() {
		_, err := writer.Write([]byte("Done\n"))
		Expect(err).ToNot(HaveOccurred())

		writer.Flush()
		Expect(lines).To(Equal([]string{"Done"}))
	})
})
