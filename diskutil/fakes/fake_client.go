package fakes

import (
	boshdiskutil "github.com/osmedia/multiboot/diskutil"
)

type FakeClient struct {
	ListList boshdiskutil.DiskList
	ListErr  error

	InfoInfos map[string]boshdiskutil.DiskInfo
	InfoErrs  map[string]error
	InfoIDs   []string

	MountedPaths        map[string]bool
	IsPathMountedPaths  []string

	UnmountDiskCalled    bool
	UnmountDiskDiskPaths []string
	UnmountDiskErr       error

	BinaryPath string
}

func NewFakeClient() *FakeClient {
	return &FakeClient{
		InfoInfos:    make(map[string]boshdiskutil.DiskInfo),
		InfoErrs:     make(map[string]error),
		MountedPaths: make(map[string]bool),
		BinaryPath:   "diskutil",
	}
}

func (c *FakeClient) List() (boshdiskutil.DiskList, error) {
	return c.ListList, c.ListErr
}

func (c *FakeClient) Info(idOrPath string) (boshdiskutil.DiskInfo, error) {
	c.InfoIDs = append(c.InfoIDs, idOrPath)
	if err, found := c.InfoErrs[idOrPath]; found {
		return boshdiskutil.DiskInfo{}, err
	}
	return c.InfoInfos[idOrPath], nil
}

func (c *FakeClient) IsPathMounted(path string) bool {
	c.IsPathMountedPaths = append(c.IsPathMountedPaths, path)
	return c.MountedPaths[path]
}

func (c *FakeClient) UnmountDisk(diskPath string) error {
	c.UnmountDiskCalled = true
	c.UnmountDiskDiskPaths = append(c.UnmountDiskDiskPaths, diskPath)
	return c.UnmountDiskErr
}

func (c *FakeClient) Path() string {
	return c.BinaryPath
}
