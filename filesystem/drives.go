package filesystem

// bitsToDrives decodes a GetLogicalDrives bitmask: bit 0 is A:, bit 25 is Z:.
func bitsToDrives(bits uint32) []Volume {
	var drives []Volume
	for i := 0; i < 26; i++ {
		if bits&(1<<uint(i)) == 0 {
			continue
		}
		name := string(rune('A'+i)) + ":"
		drives = append(drives, Volume{Name: name, Root: name + `\`})
	}
	return drives
}

// driveLabel formats a volume label the way Explorer does: "Label (C:)"
func driveLabel(label, name string) string {
	if label == "" {
		return ""
	}
	return label + " (" + name + ")"
}
