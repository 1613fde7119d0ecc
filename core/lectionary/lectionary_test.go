package lectionary

import (
	"strings"
	"testing"

	"github.com/FocuswithJustin/TanachReader/core/errors"
	"github.com/FocuswithJustin/TanachReader/core/ref"
)

const sedrotXML = `<?xml version="1.0" encoding="UTF-8"?>
<SEDROT>
 <READING NAME="Balak">
  <OPTION TYPE="TORAH" NAME="Shabbas" CYCLE="0" KOHEN="NUM22:2-22:12" LEVI="NUM22:13-22:20" SHLISHI="NUM22:21-22:38" REVII="NUM22:39-23:12" CHAMISHI="NUM23:13-23:26" SHISHI="NUM23:27-24:13" SHVII="NUM24:14-25:9"/>
  <OPTION TYPE="TORAH_TRIENNIAL_1" CYCLE="1" KOHEN="NUM22:2-22:4" LEVI="NUM22:5-22:7" SHVII="NUM22:8-22:12"/>
  <HAFTARAH TYPE="HAFTARAH" R1="MIC5:6-6:8"/>
 </READING>
 <READING NAME="Purim">
  <OPTION TYPE="MEGILLAH" R1="EST1:1-1:4"/>
 </READING>
 <READING NAME="Bereshit">
  <OPTION TYPE="TORAH" KOHEN="GEN1:1-2:3" SHVII="GEN5:25-6:8"/>
  <HAFTARAH R1="ISA42:5-42:21"/>
 </READING>
</SEDROT>`

func loadTestSchedule(t *testing.T) *Schedule {
	t.Helper()
	s, err := Load(strings.NewReader(sedrotXML))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return s
}

func mustRange(t *testing.T, expr string) ref.VerseRange {
	t.Helper()
	r, err := ref.Parse(expr)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", expr, err)
	}
	return r
}

func TestLoad(t *testing.T) {
	s := loadTestSchedule(t)

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	names := s.Names()
	if names[0] != "Balak" || names[2] != "Bereshit" {
		t.Errorf("Names() = %v", names)
	}

	sedra, ok := s.Sedra("balak")
	if !ok {
		t.Fatalf("Sedra(balak) not found")
	}
	if len(sedra.Options) != 3 {
		t.Fatalf("options = %d, want 3", len(sedra.Options))
	}

	torah := sedra.Options[0]
	if torah.Type != "TORAH" || torah.Name != "Shabbas" || torah.Cycle != 0 {
		t.Errorf("option = %+v", torah)
	}
	if len(torah.Aliyot) != 7 {
		t.Fatalf("aliyot = %d, want 7", len(torah.Aliyot))
	}
	// Document order is canonical aliyah order; the last slot is the Maftir.
	if torah.Aliyot[0].Code != "KOHEN" || torah.Aliyot[6].Code != MaftirAliyah {
		t.Errorf("aliyah order = %v ... %v", torah.Aliyot[0].Code, torah.Aliyot[6].Code)
	}
	if want := mustRange(t, "NUM22:2-22:12"); torah.Aliyot[0].Range != want {
		t.Errorf("KOHEN range = %v, want %v", torah.Aliyot[0].Range, want)
	}

	// A bare HAFTARAH element takes its tag as the type label.
	bereshit, _ := s.Sedra("Bereshit")
	if got := bereshit.Options[1].Type; got != "HAFTARAH" {
		t.Errorf("bare haftarah type = %q, want HAFTARAH", got)
	}
}

func TestLoadMalformedRange(t *testing.T) {
	bad := `<SEDROT><READING NAME="X"><OPTION TYPE="TORAH" KOHEN="not a reference"/></READING></SEDROT>`
	if _, err := Load(strings.NewReader(bad)); !errors.Is(err, errors.ErrGrammar) {
		t.Errorf("Load() error = %v, want ErrGrammar", err)
	}
}

func TestResolveTorah(t *testing.T) {
	s := loadTestSchedule(t)

	ranges, err := s.Resolve("Balak", "Torah", "", 0)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(ranges) != 7 {
		t.Fatalf("ranges = %d, want 7", len(ranges))
	}
	if want := mustRange(t, "NUM22:2-22:12"); ranges[0] != want {
		t.Errorf("first range = %v, want %v", ranges[0], want)
	}
	if want := mustRange(t, "NUM24:14-25:9"); ranges[6] != want {
		t.Errorf("last range = %v, want %v", ranges[6], want)
	}

	// Deterministic across repeated calls.
	again, err := s.Resolve("Balak", "Torah", "", 0)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	for i := range ranges {
		if ranges[i] != again[i] {
			t.Errorf("Resolve() is not stable at index %d", i)
		}
	}
}

func TestResolveSubstringTypeMatch(t *testing.T) {
	s := loadTestSchedule(t)

	// "TORAH" is a substring of "TORAH_TRIENNIAL_1", so cycle 1 selects the
	// triennial option.
	ranges, err := s.Resolve("Balak", "TORAH", "", 1)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(ranges) != 3 {
		t.Fatalf("ranges = %d, want the 3 triennial aliyot", len(ranges))
	}
	if want := mustRange(t, "NUM22:2-22:4"); ranges[0] != want {
		t.Errorf("first range = %v, want %v", ranges[0], want)
	}
}

func TestResolveCycleFallback(t *testing.T) {
	s := loadTestSchedule(t)

	// No option carries cycle 2; the annual option (cycle 0) wins.
	ranges, err := s.Resolve("Balak", "Torah", "", 2)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(ranges) != 7 {
		t.Errorf("ranges = %d, want the 7 annual aliyot", len(ranges))
	}

	// A sedra without cycle attributes treats any cycle as the annual one.
	ranges, err = s.Resolve("Bereshit", "Torah", "", 3)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(ranges) != 2 {
		t.Errorf("ranges = %d, want 2", len(ranges))
	}
}

func TestResolveFallbackToAllOptions(t *testing.T) {
	s := loadTestSchedule(t)

	// Purim has only a MEGILLAH option. Requesting "Torah" matches nothing,
	// so the legacy fallback considers every option.
	ranges, err := s.Resolve("Purim", "Torah", "", 0)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(ranges) != 1 {
		t.Fatalf("ranges = %d, want 1", len(ranges))
	}
	if want := mustRange(t, "EST1:1-1:4"); ranges[0] != want {
		t.Errorf("range = %v, want %v", ranges[0], want)
	}
}

func TestResolveAliyah(t *testing.T) {
	s := loadTestSchedule(t)

	ranges, err := s.Resolve("Balak", "Torah", "shvii", 0)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(ranges) != 1 {
		t.Fatalf("ranges = %d, want 1", len(ranges))
	}
	if want := mustRange(t, "NUM24:14-25:9"); ranges[0] != want {
		t.Errorf("range = %v, want %v", ranges[0], want)
	}

	if _, err := s.Resolve("Balak", "Torah", "NOSUCH", 0); !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("Resolve() error = %v, want ErrNotFound", err)
	}
}

func TestResolveUnknownParasha(t *testing.T) {
	s := loadTestSchedule(t)
	if _, err := s.Resolve("Nachamu", "Torah", "", 0); !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("Resolve() error = %v, want ErrNotFound", err)
	}
}

func TestHaftarah(t *testing.T) {
	s := loadTestSchedule(t)

	ranges, err := s.Haftarah("Balak", 0)
	if err != nil {
		t.Fatalf("Haftarah() error = %v", err)
	}
	if want := mustRange(t, "MIC5:6-6:8"); len(ranges) != 1 || ranges[0] != want {
		t.Errorf("Haftarah() = %v, want [%v]", ranges, want)
	}

	// Bare HAFTARAH elements (no TYPE attribute) resolve too.
	ranges, err = s.Haftarah("Bereshit", 0)
	if err != nil {
		t.Fatalf("Haftarah() error = %v", err)
	}
	if want := mustRange(t, "ISA42:5-42:21"); len(ranges) != 1 || ranges[0] != want {
		t.Errorf("Haftarah() = %v, want [%v]", ranges, want)
	}
}

func TestMaftir(t *testing.T) {
	s := loadTestSchedule(t)

	ranges, err := s.Maftir("Balak", 0)
	if err != nil {
		t.Fatalf("Maftir() error = %v", err)
	}
	if want := mustRange(t, "NUM24:14-25:9"); len(ranges) != 1 || ranges[0] != want {
		t.Errorf("Maftir() = %v, want [%v]", ranges, want)
	}
}
