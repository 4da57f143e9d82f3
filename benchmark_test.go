package uuid

import (
	"testing"
)

func BenchmarkNewV4(b *testing.B) {
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, err := New()
			if err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkGenerator_NewV4(b *testing.B) {
	gen := NewGenerator()
	b.ResetTimer()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, err := gen.NewV4()
			if err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkNewV5(b *testing.B) {
	data := []byte("www.example.com")
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := NewV5(NamespaceDNS, data)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUUID_String(b *testing.B) {
	uuid, _ := New()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = uuid.String()
	}
}

func BenchmarkParse(b *testing.B) {
	s := "f47ac10b-58cc-4372-a567-0e02b2c3d479"
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := Parse(s)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse_Reject(b *testing.B) {
	s := "f47ac10b58cc-4372-a567-0e02b2c3d4791"
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(s); err == nil {
			b.Fatal("expected rejection")
		}
	}
}

func BenchmarkUUID_MarshalText(b *testing.B) {
	uuid, _ := New()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := uuid.MarshalText()
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUUID_UnmarshalText(b *testing.B) {
	text := []byte("f47ac10b-58cc-4372-a567-0e02b2c3d479")
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var uuid UUID
		err := uuid.UnmarshalText(text)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFromBytes(b *testing.B) {
	uuid, _ := New()
	data := uuid.Bytes()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := FromBytes(data)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFromBytesLE(b *testing.B) {
	uuid, _ := New()
	data := uuid.Bytes()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := FromBytesLE(data)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUUID_EncodeToHex(b *testing.B) {
	uuid, _ := New()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = uuid.EncodeToHex()
	}
}

func BenchmarkUUID_EncodeToBase64(b *testing.B) {
	uuid, _ := New()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = uuid.EncodeToBase64()
	}
}

func BenchmarkUUID_EncodeToBase64Std(b *testing.B) {
	uuid, _ := New()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = uuid.EncodeToBase64Std()
	}
}

func BenchmarkDecodeFromBase64(b *testing.B) {
	uuid, _ := New()
	s := uuid.EncodeToBase64()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := DecodeFromBase64(s)
		if err != nil {
			b.Fatal(err)
		}
	}
}
