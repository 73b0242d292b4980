// Copyright 2026 José Luis Salvador Rufo <salvador.joseluis@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package uuid_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	guuid "github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jlsalvador/simple-uuid/pkg/hasher"
	u "github.com/jlsalvador/simple-uuid/pkg/uuid"
)

func checkVersionVariant(t *testing.T, id u.UUID, want u.Version) {
	t.Helper()

	if got := id.Version(); got != want {
		t.Errorf("%s: Version() = %d, want %d", id, got, want)
	}
	// Two top bits of clock-seq-and-reserved are 10.
	if got := id.ClockSeqHigh() >> 6; got != 0b10 {
		t.Errorf("%s: variant bits = %02b, want 10", id, got)
	}
}

func TestNewV5(t *testing.T) {
	tcs := []struct {
		namespace u.UUID
		name      string
		want      string
	}{
		{u.NamespaceDNS, "bubba", "eea1105e-3681-5117-99b6-7b2b5fe1f3c7"},
		{u.NamespaceDNS, "www.example.com", "2ed6657d-e927-568b-95e1-2665a8aea6a2"},
		{u.NamespaceDNS, "python.org", "886313e1-3b8a-5372-9b90-0c9aee199e5d"},
		{u.NamespaceURL, "https://example.com", "4fd35a71-71ef-5a55-a9d9-aa75c889a6d0"},
		{u.NamespaceOID, "1.3.6.1", "1447fa61-5277-5fef-a9b3-fbc6e44f4af3"},
		{u.NamespaceX500, "cn=John Doe", "6b28d549-d26e-5bfc-ae5e-9a39af63dc3f"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := u.NewV5(tc.namespace, tc.name)
			if got.String() != tc.want {
				t.Errorf("NewV5() = %s, want %s", got, tc.want)
			}
			checkVersionVariant(t, got, u.VersionSHA1)

			oracle := guuid.NewSHA1(tc.namespace.Google(), []byte(tc.name))
			if got.Google() != oracle {
				t.Errorf("NewV5() = %s, google/uuid = %s", got, oracle)
			}
		})
	}
}

func TestNewV3(t *testing.T) {
	tcs := []struct {
		namespace u.UUID
		name      string
		want      string
	}{
		{u.NamespaceDNS, "bubba", "5e320838-7157-3039-8383-652d96705a7d"},
		{u.NamespaceDNS, "www.example.com", "5df41881-3aed-3515-88a7-2f4a814cf09e"},
		{u.NamespaceDNS, "python.org", "6fa459ea-ee8a-3ca4-894e-db77e160355e"},
		{u.NamespaceURL, "https://example.com", "68794df6-5e20-385f-ab08-bb73f8a433cb"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := u.NewV3(tc.namespace, tc.name)
			if got.String() != tc.want {
				t.Errorf("NewV3() = %s, want %s", got, tc.want)
			}
			checkVersionVariant(t, got, u.VersionMD5)

			oracle := guuid.NewMD5(tc.namespace.Google(), []byte(tc.name))
			if got.Google() != oracle {
				t.Errorf("NewV3() = %s, google/uuid = %s", got, oracle)
			}
		})
	}
}

func TestNameBased_Determinism(t *testing.T) {
	if u.NewV5(u.NamespaceDNS, "bubba") != u.NewV5(u.NamespaceDNS, "bubba") {
		t.Error("NewV5() should be deterministic")
	}
	if u.NewV3(u.NamespaceDNS, "bubba") != u.NewV3(u.NamespaceDNS, "bubba") {
		t.Error("NewV3() should be deterministic")
	}
	if u.NewV5(u.NamespaceDNS, "bubba") == u.NewV5(u.NamespaceDNS, "bubbb") {
		t.Error("different names should give different UUIDs")
	}
	if u.NewV5(u.NamespaceDNS, "bubba") == u.NewV5(u.NamespaceURL, "bubba") {
		t.Error("different namespaces should give different UUIDs")
	}
	if u.NewV3(u.NamespaceDNS, "bubba") == u.NewV5(u.NamespaceDNS, "bubba") {
		t.Error("different hashes should give different UUIDs")
	}
}

func TestNewNameBased_UnsupportedVersion(t *testing.T) {
	for _, v := range []u.Version{u.VersionNil, u.VersionTime, u.VersionDCE, u.VersionRandom, 6} {
		t.Run(v.String(), func(t *testing.T) {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok || !errors.Is(err, u.ErrUnsupportedVersion) {
					t.Errorf("expected panic with ErrUnsupportedVersion, got %v", r)
				}
			}()
			u.NewNameBased(hasher.NewSha1(), u.NamespaceDNS, "bubba", v)
		})
	}
}

func TestNewV4(t *testing.T) {
	id, err := u.NewV4()
	if err != nil {
		t.Fatalf("NewV4() returned error: %v", err)
	}
	checkVersionVariant(t, id, u.VersionRandom)

	other := u.MustNewV4()
	if id == other {
		t.Error("Two consecutive UUIDs should not be equal")
	}
	checkVersionVariant(t, u.New(), u.VersionRandom)
}

func TestNewV4_FixedBitsOnly(t *testing.T) {
	oldReader := u.RandRead
	defer func() { u.RandRead = oldReader }()
	u.RandRead = zeroReader

	id := u.MustNewV4()
	if got, want := id.String(), "00000000-0000-4000-8000-000000000000"; got != want {
		t.Errorf("NewV4() with zero entropy = %s, want %s", got, want)
	}
}

func TestNewV4_Error(t *testing.T) {
	oldReader := u.RandRead
	defer func() { u.RandRead = oldReader }()
	u.RandRead = failingReader

	if _, err := u.NewV4(); err == nil {
		t.Error("NewV4() should return error when RandRead fails")
	}
}

func TestMustNewV4_Panic(t *testing.T) {
	oldReader := u.RandRead
	defer func() { u.RandRead = oldReader }()
	u.RandRead = failingReader

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustNewV4() should panic when NewV4() returns error")
		}
	}()

	u.MustNewV4()
}

func TestNewV1(t *testing.T) {
	now := time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)
	node := [6]byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab}
	clock := u.MustNewClock(
		u.WithNow(func() time.Time { return now }),
		u.WithNode(node),
		u.WithSequence(0x1234),
	)

	id := clock.NewV1()
	if got, want := id.String(), "06f90000-cb50-11f1-9234-0123456789ab"; got != want {
		t.Errorf("NewV1() = %s, want %s", got, want)
	}
	checkVersionVariant(t, id, u.VersionTime)

	if got := id.NodeID(); got != node {
		t.Errorf("NodeID() = %x, want %x", got, node)
	}
	if got := id.ClockSeq(); got != 0x1234 {
		t.Errorf("ClockSeq() = %#x, want 0x1234", got)
	}
	if tm, ok := id.Time(); !ok || !tm.Equal(now) {
		t.Errorf("Time() = %v, %v; want %v", tm, ok, now)
	}

	checkVersionVariant(t, u.NewV1(), u.VersionTime)
}

func TestNewV1_ClockRegression(t *testing.T) {
	first := time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)
	times := []time.Time{first, first.Add(-time.Second)}

	var i int
	clock := u.MustNewClock(u.WithNow(func() time.Time {
		tm := times[i]
		i++
		return tm
	}))

	a := clock.NewV1()
	b := clock.NewV1()

	if a.ClockSeq() == b.ClockSeq() {
		t.Errorf("clock sequence should change on regression: %s %s", a, b)
	}
	if a.NodeID() != b.NodeID() {
		t.Errorf("node should be shared: %s %s", a, b)
	}
	if a == b {
		t.Errorf("UUIDs should differ: %s", a)
	}
}

func TestNewV1_SameTick(t *testing.T) {
	now := time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)
	clock := u.MustNewClock(
		u.WithNow(func() time.Time { return now }),
		u.WithSequence(0x3fff),
	)

	a := clock.NewV1()
	b := clock.NewV1()
	c := clock.NewV1()

	if a.ClockSeq() != 0x3fff || b.ClockSeq() != 0 || c.ClockSeq() != 1 {
		t.Errorf("clock sequences = %#x %#x %#x, want 0x3fff 0x0 0x1",
			a.ClockSeq(), b.ClockSeq(), c.ClockSeq())
	}
}

func TestNewV1_Concurrent(t *testing.T) {
	now := time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)
	clock := u.MustNewClock(u.WithNow(func() time.Time { return now }))

	const workers, perWorker = 8, 256

	var mu sync.Mutex
	seen := map[u.UUID]struct{}{}

	var g errgroup.Group
	for range workers {
		g.Go(func() error {
			local := make([]u.UUID, 0, perWorker)
			for range perWorker {
				local = append(local, clock.NewV1())
			}

			mu.Lock()
			defer mu.Unlock()
			for _, id := range local {
				seen[id] = struct{}{}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	if len(seen) != workers*perWorker {
		t.Errorf("expected %d distinct UUIDs, got %d", workers*perWorker, len(seen))
	}
}

func BenchmarkNewV4(b *testing.B) {
	for b.Loop() {
		_, _ = u.NewV4()
	}
}

func BenchmarkNewV5(b *testing.B) {
	for b.Loop() {
		_ = u.NewV5(u.NamespaceDNS, "www.example.com")
	}
}

func BenchmarkNewV1(b *testing.B) {
	clock := u.MustNewClock()

	for b.Loop() {
		_ = clock.NewV1()
	}
}
