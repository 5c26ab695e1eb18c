package fakes

import (
	"time"
)

type FakeResolver struct {
	WaitForMountResult   bool
	WaitForMountNames    []string
	WaitForMountMaxWaits []time.Duration

	ResolvePaths map[string]string
	ResolveErr   error
	ResolveNames []string
}

func NewFakeResolver() *FakeResolver {
	return &FakeResolver{
		WaitForMountResult: true,
		ResolvePaths:       make(map[string]string),
	}
}

func (r *FakeResolver) WaitForMount(name string, maxWait time.Duration) bool {
	r.WaitForMountNames = append(r.WaitForMountNames, name)
	r.WaitForMountMaxWaits = append(r.WaitForMountMaxWaits, maxWait)
	return r.WaitForMountResult
}

func (r *FakeResolver) Resolve(expectedName, installerName string) (string, error) {
	r.ResolveNames = append(r.ResolveNames, expectedName)
	if r.ResolveErr != nil {
		return "", r.ResolveErr
	}
	return r.ResolvePaths[expectedName], nil
}
