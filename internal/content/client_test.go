package content

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, zerolog.Nop())
}

func surahEditionJSON(editionID, format string, ayahs string) string {
	return fmt.Sprintf(`{
		"number": 1,
		"name": "سورة الفاتحة",
		"englishName": "Al-Faatiha",
		"numberOfAyahs": 7,
		"revelationType": "Meccan",
		"edition": {"identifier": %q, "language": "ar", "englishName": "Test", "format": %q, "type": "versebyverse"},
		"ayahs": [%s]
	}`, editionID, format, ayahs)
}

func okEnvelope(data string) string {
	return fmt.Sprintf(`{"code": 200, "status": "OK", "data": %s}`, data)
}

func TestListSurahs(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/surah" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		fmt.Fprint(w, okEnvelope(`[
			{"number": 1, "name": "سورة الفاتحة", "englishName": "Al-Faatiha", "numberOfAyahs": 7, "revelationType": "Meccan"},
			{"number": 2, "name": "سورة البقرة", "englishName": "Al-Baqara", "numberOfAyahs": 286, "revelationType": "Medinan"}
		]`))
	})

	surahs, err := client.ListSurahs(context.Background())
	if err != nil {
		t.Fatalf("ListSurahs() error = %v", err)
	}

	if len(surahs) != 2 {
		t.Fatalf("expected 2 surahs, got %d", len(surahs))
	}
	if surahs[0].Number != 1 || surahs[0].EnglishName != "Al-Faatiha" || surahs[0].AyahCount != 7 {
		t.Errorf("unexpected first surah: %+v", surahs[0])
	}
	if surahs[1].RevelationType != "Medinan" {
		t.Errorf("expected Medinan, got %s", surahs[1].RevelationType)
	}
}

func TestListSurahs_MalformedData(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, okEnvelope(`{"not": "a list"}`))
	})

	if _, err := client.ListSurahs(context.Background()); err == nil {
		t.Error("expected error for malformed surah list")
	}
}

func TestListEditions_FiltersNonNarrations(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, okEnvelope(`[
			{"identifier": "ar.alafasy", "language": "ar", "englishName": "Alafasy", "format": "audio", "type": "versebyverse"},
			{"identifier": "en.walk", "language": "en", "englishName": "Walk", "format": "audio", "type": "versebyverse"},
			{"identifier": "quran-uthmani", "language": "ar", "englishName": "Uthmani", "format": "text", "type": "quran"}
		]`))
	})

	editions, err := client.ListEditions(context.Background())
	if err != nil {
		t.Fatalf("ListEditions() error = %v", err)
	}

	if len(editions) != 1 {
		t.Fatalf("expected 1 narration edition, got %d", len(editions))
	}
	if editions[0].ID != "ar.alafasy" {
		t.Errorf("expected ar.alafasy, got %s", editions[0].ID)
	}
}

func TestGetBundle_AssemblesComponents(t *testing.T) {
	audioAyahs := `{"number": 1, "numberInSurah": 1, "audio": "https://cdn/1.mp3", "text": ""},
		{"number": 2, "numberInSurah": 2, "audio": "https://cdn/2.mp3", "text": ""}`
	textAyahs := `{"number": 1, "numberInSurah": 1, "text": "بِسْمِ اللَّهِ"},
		{"number": 2, "numberInSurah": 2, "text": "الْحَمْدُ لِلَّهِ"}`
	translationAyahs := `{"number": 1, "numberInSurah": 1, "text": "In the name of God"},
		{"number": 2, "numberInSurah": 2, "text": ""}`

	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		want := "/surah/1/editions/ar.alafasy," + TextEditionID + "," + TranslationEditionID
		if r.URL.Path != want {
			t.Errorf("unexpected path %s, want %s", r.URL.Path, want)
		}
		fmt.Fprint(w, okEnvelope("["+
			surahEditionJSON("ar.alafasy", "audio", audioAyahs)+","+
			surahEditionJSON(TextEditionID, "text", textAyahs)+","+
			surahEditionJSON(TranslationEditionID, "text", translationAyahs)+
			"]"))
	})

	bundle, err := client.GetBundle(context.Background(), 1, "ar.alafasy")
	if err != nil {
		t.Fatalf("GetBundle() error = %v", err)
	}

	if bundle.Len() != 2 {
		t.Fatalf("expected 2 ayahs, got %d", bundle.Len())
	}
	if bundle.EditionID != "ar.alafasy" {
		t.Errorf("EditionID = %s, expected ar.alafasy", bundle.EditionID)
	}
	first, _ := bundle.AyahAt(0)
	if first.AudioURL != "https://cdn/1.mp3" {
		t.Errorf("AudioURL = %s", first.AudioURL)
	}
	if first.Text != "بِسْمِ اللَّهِ" {
		t.Errorf("Text = %s", first.Text)
	}
	if first.Translation != "In the name of God" {
		t.Errorf("Translation = %s", first.Translation)
	}

	// Empty translation text falls back to the placeholder rather than
	// failing the bundle.
	second, _ := bundle.AyahAt(1)
	if second.Translation != TranslationPlaceholder {
		t.Errorf("Translation = %q, expected placeholder", second.Translation)
	}
}

func TestGetBundle_MissingComponentNamed(t *testing.T) {
	audioAyahs := `{"number": 1, "numberInSurah": 1, "audio": "https://cdn/1.mp3", "text": ""}`
	textAyahs := `{"number": 1, "numberInSurah": 1, "text": "بِسْمِ اللَّهِ"}`

	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		// Translation edition absent from the response.
		fmt.Fprint(w, okEnvelope("["+
			surahEditionJSON("ar.alafasy", "audio", audioAyahs)+","+
			surahEditionJSON(TextEditionID, "text", textAyahs)+
			"]"))
	})

	_, err := client.GetBundle(context.Background(), 1, "ar.alafasy")

	var dataErr *DataError
	if !errors.As(err, &dataErr) {
		t.Fatalf("expected DataError, got %v", err)
	}
	if dataErr.Component != fmt.Sprintf("translation %q", TranslationEditionID) {
		t.Errorf("Component = %q, should name the translation edition", dataErr.Component)
	}
}

func TestGetBundle_ServerMessagePropagated(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"code": 404, "status": "NOT FOUND", "data": "Surah not found."}`)
	})

	_, err := client.GetBundle(context.Background(), 999, "ar.alafasy")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Message != "Surah not found." {
		t.Errorf("Message = %q, expected server-provided message", apiErr.Message)
	}
}

func TestGet_NonJSONFailure(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, "bad gateway")
	})

	_, err := client.ListSurahs(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadGateway {
		t.Errorf("StatusCode = %d, expected 502", apiErr.StatusCode)
	}
}
